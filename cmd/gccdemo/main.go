// This example shows the three GCC propagator variants side by side on the
// same instance, from the cheapest (Val) to the most expensive (Dom).
package main

import (
	"fmt"

	"github.com/gitrdm/gcc-propagators/pkg/gcc"
)

func main() {
	fmt.Println("=== GCC Propagator Demo ===")
	fmt.Println()

	valDemo()
	bndDemo()
	domDemo()
	configDemo()
}

// valDemo shows ValPropagator forcing a variable once its value saturates.
func valDemo() {
	fmt.Println("1. Val: saturation forces a variable")

	a := gcc.NewVarFromValues(0, 2, []int{1}, "a")
	b := gcc.NewVar(0, 2, "b")
	c := gcc.NewVar(0, 2, "c")
	views := []gcc.IntView{a, b, c}

	card1 := gcc.NewCard(1, 1, 1)
	card2 := gcc.NewCard(2, 0, 2)

	p, err := gcc.PostVal(views, []*gcc.Card{&card1, &card2}, true)
	if err != nil {
		fmt.Println("   post error:", err)
		return
	}
	if _, err := p.Propagate(); err != nil {
		fmt.Println("   propagate error:", err)
		return
	}
	fmt.Printf("   %v %v %v\n\n", a, b, c)
}

// bndDemo shows BndPropagator tightening free variable-backed cardinalities
// to the number of variables that can still take each value.
func bndDemo() {
	fmt.Println("2. Bnd: candidate counts tighten free cardinalities")

	views := make([]gcc.IntView, 4)
	for i := range views {
		views[i] = gcc.NewVar(0, 5, fmt.Sprintf("x%d", i))
	}
	cardViews := make([]*gcc.Var, 5)
	cards := make([]*gcc.Card, 5)
	for i := 0; i < 5; i++ {
		cardViews[i] = gcc.NewVar(-1, 10, fmt.Sprintf("k%d", i+1))
		c := gcc.NewCardView(i+1, cardViews[i])
		cards[i] = &c
	}

	p, err := gcc.PostBnd(views, cards, false)
	if err != nil {
		fmt.Println("   post error:", err)
		return
	}
	if _, _, err := p.Propagate(); err != nil {
		fmt.Println("   propagate error:", err)
		return
	}
	for i, c := range cards {
		fmt.Printf("   k%d in [%d,%d]\n", i+1, c.Min(), c.Max())
	}
	fmt.Println()
}

// domDemo shows DomPropagator forcing a variable onto the only value the
// other two cannot supply.
func domDemo() {
	fmt.Println("3. Dom: arc consistency forces the remaining value")

	a := gcc.NewVarFromValues(0, 2, []int{1, 2}, "a")
	b := gcc.NewVarFromValues(0, 2, []int{1, 2}, "b")
	c := gcc.NewVarFromValues(0, 3, []int{1, 2, 3}, "c")
	views := []gcc.IntView{a, b, c}

	card1 := gcc.NewCard(1, 1, 1)
	card2 := gcc.NewCard(2, 1, 1)
	card3 := gcc.NewCard(3, 1, 1)

	p, err := gcc.PostDom(views, []*gcc.Card{&card1, &card2, &card3}, true)
	if err != nil {
		fmt.Println("   post error:", err)
		return
	}
	if _, _, err := p.Propagate(); err != nil {
		fmt.Println("   propagate error:", err)
		return
	}
	fmt.Printf("   %v %v %v\n\n", a, b, c)
}

// configDemo shows decoding a weakly-typed configuration map (as an
// embedding application would load from YAML/JSON) into a Config and
// letting it choose which variant to post.
func configDemo() {
	fmt.Println("4. Config: posting from a decoded configuration")

	cfg, err := gcc.DecodeConfig(map[string]interface{}{
		"variant": "dom",
		"all":     true,
	})
	if err != nil {
		fmt.Println("   decode error:", err)
		return
	}

	views := []gcc.IntView{
		gcc.NewVar(0, 2, "x"),
		gcc.NewVar(0, 2, "y"),
	}
	card1 := gcc.NewCard(1, 0, 2)
	card2 := gcc.NewCard(2, 0, 2)

	if _, err := cfg.Post(views, []*gcc.Card{&card1, &card2}); err != nil {
		fmt.Println("   post error:", err)
		return
	}
	fmt.Printf("   posted variant %q, built with gcc %v\n", cfg.Variant, gcc.Version)
}

