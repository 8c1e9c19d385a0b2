// Package quantity implements the "quantity expander" collaborator the
// packing core expects as input preparation: replicating one authored
// photo into N independent copies, each minted a fresh opaque id
// (uuid.New()) at the point a caller-authored record is expanded into
// placeable units.
package quantity

import (
	"github.com/google/uuid"

	"github.com/piwi3910/photopack/pkg/pack"
)

// Order describes one authored photo and how many copies of it to place.
type Order struct {
	Size     pack.PhotoSize
	Rotation int
	Priority int
	Quantity int
	Payload  any
}

// Expand replicates order into order.Quantity pack.PhotoInput copies, each
// minted with a fresh, opaque id via google/uuid. Size, rotation, priority,
// and payload are identical across copies; only the id distinguishes them,
// replacing the source's fractional-id-offset scheme.
func Expand(order Order) []pack.PhotoInput {
	inputs := make([]pack.PhotoInput, 0, order.Quantity)
	for i := 0; i < order.Quantity; i++ {
		inputs = append(inputs, pack.PhotoInput{
			ID:       uuid.New().String(),
			Size:     order.Size,
			Rotation: order.Rotation,
			Priority: order.Priority,
			Payload:  order.Payload,
		})
	}
	return inputs
}

// ExpandAll expands every order in orders and concatenates the results,
// preserving order-list order (the caller's priority field, not this
// function, controls placement order within the core).
func ExpandAll(orders []Order) []pack.PhotoInput {
	var all []pack.PhotoInput
	for _, o := range orders {
		all = append(all, Expand(o)...)
	}
	return all
}
