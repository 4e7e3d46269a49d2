package domain

type View string

const (
	ViewHome   View = "home"
	ViewCart   View = "cart"
	ViewDetail View = "detail"
)

// Route is the parsed form of a URL fragment. The fragment itself is the
// source of truth; a Route carries no independent state. ProductID is
// meaningful only when View is ViewDetail.
type Route struct {
	View      View `json:"view"`
	ProductID int  `json:"product_id,omitempty"`
}

func HomeRoute() Route {
	return Route{View: ViewHome}
}

func CartRoute() Route {
	return Route{View: ViewCart}
}

func DetailRoute(productID int) Route {
	return Route{View: ViewDetail, ProductID: productID}
}
