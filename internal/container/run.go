package container

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"marketplace/storefront/internal/domain"
	"marketplace/storefront/internal/view"

	log "github.com/sirupsen/logrus"
)

// Run reads interaction events from stdin and prints the refreshed view model
// after each one, standing in for the external renderer. Supported lines:
//
//	#<fragment>            navigate (e.g. #keranjang, #produk/3)
//	add <id> [qty]         add to cart
//	qty <id> <n>           set quantity (clamped to stock, 0 removes)
//	rm <id>                remove line
//	cat <category>         filter by category
//	search <text>          set search text
//	sort <mode>            default | price_asc | price_desc | name
//	quit
func (c *Container) Run(ctx context.Context) error {
	printModel(c.Coordinator.Current(), c.Coordinator.Badge())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := c.handle(ctx, line); err != nil {
			log.Warnf("Ignoring command %q: %v", line, err)
			continue
		}
		printModel(c.Coordinator.Current(), c.Coordinator.Badge())
	}
	return scanner.Err()
}

func (c *Container) handle(ctx context.Context, line string) error {
	if strings.HasPrefix(line, "#") {
		c.Coordinator.Navigate(line)
		return nil
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "add":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: add <id> [qty]")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		qty := 1
		if len(args) == 2 {
			if qty, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
		}
		c.Cart.Add(ctx, id, qty)
	case "qty":
		if len(args) != 2 {
			return fmt.Errorf("usage: qty <id> <n>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		// SetQty leaves clamping to the caller; do it here like the add path.
		if product, ok := c.Catalog.Get(id); ok && qty > product.Stock {
			qty = product.Stock
		}
		c.Cart.SetQty(ctx, id, qty)
	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: rm <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		c.Cart.Remove(ctx, id)
	case "cat":
		if len(args) == 0 {
			return fmt.Errorf("usage: cat <category>")
		}
		c.Coordinator.SetCategory(strings.Join(args, " "))
	case "search":
		c.Coordinator.SetSearch(strings.Join(args, " "))
	case "sort":
		if len(args) != 1 {
			return fmt.Errorf("usage: sort <default|price_asc|price_desc|name>")
		}
		c.Coordinator.SetSort(domain.ParseSortMode(args[0]))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printModel(m view.Model, badge int) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		log.Errorf("Failed to encode view model: %v", err)
		return
	}
	fmt.Printf("cart badge: %d\n%s\n", badge, data)
}
