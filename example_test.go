// SPDX-License-Identifier: MIT

package cellbounds_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cellbounds"
	"github.com/katalvlaran/cellbounds/interval"
	"github.com/katalvlaran/cellbounds/labeled"
)

// ExampleInferBounds reconstructs left-closed cells from numeric labels.
func ExampleInferBounds() {
	coord := labeled.NewCoord("x", []float64{1, 2, 3})

	bounds, err := cellbounds.InferBounds(coord)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range bounds.Data {
		fmt.Println(row)
	}
	fmt.Println("closed:", bounds.Attrs[cellbounds.AttrClosed])
	// Output:
	// [1 2]
	// [2 3]
	// [3 4]
	// closed: left
}

// ExampleInferTimeBounds recovers exact month cells from labels that sit
// in the middle of each month.
func ExampleInferTimeBounds() {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	var mids []time.Time
	for i := 0; i < 3; i++ {
		lo := start.AddDate(0, i, 0)
		hi := start.AddDate(0, i+1, 0)
		mids = append(mids, lo.Add(hi.Sub(lo)/2))
	}
	// One extra month: midpoint inference needs at least four labels.
	mids = append(mids, start.AddDate(0, 3, 0).Add(15*24*time.Hour))

	coord := labeled.NewCoord("time", mids)
	bounds, err := cellbounds.InferTimeBounds(coord, cellbounds.WithLabel(interval.SideMiddle))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range bounds.Data {
		fmt.Println(row[0].Format("2006-01-02"), "..", row[1].Format("2006-01-02"))
	}
	// Output:
	// 2000-01-01 .. 2000-02-01
	// 2000-02-01 .. 2000-03-01
	// 2000-03-01 .. 2000-04-01
	// 2000-04-01 .. 2000-05-01
}
