package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RestaurantPizza links a pizza to a restaurant together with the price the restaurant charges for it
type RestaurantPizza struct {
	ID           int `gorm:"primaryKey"`
	Price        int `gorm:"not null;check:chk_restaurant_pizzas_price,price > 0"`
	RestaurantID int `gorm:"not null;index"`
	PizzaID      int `gorm:"not null;index"`

	Restaurant Restaurant
	Pizza      Pizza
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// View returns the nested representation used inside a restaurant detail.
// Pizza must be loaded.
func (rp RestaurantPizza) View() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Pizza:        rp.Pizza.Summary(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
	}
}

// Created returns the payload answered after a successful creation.
// Pizza and Restaurant must be loaded.
func (rp RestaurantPizza) Created() RestaurantPizzaCreated {
	return RestaurantPizzaCreated{
		ID:           rp.ID,
		Pizza:        rp.Pizza.Summary(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		Restaurant:   rp.Restaurant.Summary(),
		RestaurantID: rp.RestaurantID,
	}
}

// RestaurantPizzaRequest is the raw body of a creation request.
// Fields are kept raw so that type errors are reported per field instead of failing the whole decode.
type RestaurantPizzaRequest struct {
	Price        json.RawMessage `json:"price" swaggertype:"integer"`
	PizzaID      json.RawMessage `json:"pizza_id" swaggertype:"integer"`
	RestaurantID json.RawMessage `json:"restaurant_id" swaggertype:"integer"`
}

// NewRestaurantPizza holds the validated values of a creation request
type NewRestaurantPizza struct {
	Price        int
	PizzaID      int
	RestaurantID int
}

// Validate checks every field and returns all the problems found, not only the first one.
// Each field must be a JSON integer greater than zero.
func (r RestaurantPizzaRequest) Validate() (NewRestaurantPizza, []string) {
	var (
		input  NewRestaurantPizza
		errors []string
		ok     bool
	)

	if input.Price, ok = positiveInt(r.Price); !ok {
		errors = append(errors, MsgPriceInvalid)
	}
	if input.PizzaID, ok = positiveInt(r.PizzaID); !ok {
		errors = append(errors, MsgPizzaIDInvalid)
	}
	if input.RestaurantID, ok = positiveInt(r.RestaurantID); !ok {
		errors = append(errors, MsgRestaurantIDInvalid)
	}

	return input, errors
}

// positiveInt reports whether raw is a JSON integer >= 1.
// Strings, booleans, null and numbers with a fractional part or exponent are rejected.
func positiveInt(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return 0, false
	}

	number, isNumber := value.(json.Number)
	if !isNumber {
		return 0, false
	}
	n, err := strconv.Atoi(number.String())
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
