package models

// RestaurantSummary is the flat JSON shape of a restaurant
type RestaurantSummary struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Karen's Pizza Shack"`
	Address string `json:"address" example:"address1"`
}

// PizzaSummary is the flat JSON shape of a pizza
type PizzaSummary struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Emma"`
	Ingredients string `json:"ingredients" example:"Dough, Tomato Sauce, Cheese"`
}

// RestaurantPizzaView is one priced pizza as embedded in a RestaurantDetail
type RestaurantPizzaView struct {
	ID           int          `json:"id" example:"1"`
	Pizza        PizzaSummary `json:"pizza"`
	PizzaID      int          `json:"pizza_id" example:"1"`
	Price        int          `json:"price" example:"10"`
	RestaurantID int          `json:"restaurant_id" example:"1"`
}

// RestaurantDetail is a restaurant together with its priced pizzas
type RestaurantDetail struct {
	RestaurantSummary
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is the response of a successful RestaurantPizza creation
type RestaurantPizzaCreated struct {
	ID           int               `json:"id" example:"4"`
	Pizza        PizzaSummary      `json:"pizza"`
	PizzaID      int               `json:"pizza_id" example:"1"`
	Price        int               `json:"price" example:"10"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	RestaurantID int               `json:"restaurant_id" example:"3"`
}
