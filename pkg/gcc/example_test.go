package gcc

import "fmt"

// ExamplePostDom demonstrates posting a global-cardinality constraint with
// the domain-consistent variant and observing the resulting pruning.
//
// Three variables a, b, c range over {1,2}. Value 1 must occur exactly once
// and value 2 may occur 0..2 times. Every value of every domain lies on some
// feasible assignment, so propagation cannot determine which variable takes
// 1 and leaves every domain {1,2} unchanged, leaving the search to pick a
// matching.
func ExamplePostDom() {
	a := NewVar(0, 2, "a")
	b := NewVar(0, 2, "b")
	c := NewVar(0, 2, "c")
	views := []IntView{a, b, c}

	card1 := NewCard(1, 1, 1)
	card2 := NewCard(2, 0, 2)

	p, err := PostDom(views, []*Card{&card1, &card2}, true)
	if err != nil {
		panic(err)
	}
	if _, _, err := p.Propagate(); err != nil {
		panic(err)
	}

	fmt.Println("a:", a)
	fmt.Println("b:", b)
	fmt.Println("c:", c)
	// Output:
	// a: a={1,2}
	// b: b={1,2}
	// c: c={1,2}
}

// ExamplePostVal demonstrates the value-consistent variant forcing a
// variable once its value's upper bound is reached by the others.
func ExamplePostVal() {
	a := NewVarFromValues(0, 2, []int{1}, "a")
	b := NewVar(0, 2, "b")
	c := NewVar(0, 2, "c")
	views := []IntView{a, b, c}

	card1 := NewCard(1, 1, 1)
	card2 := NewCard(2, 0, 2)

	p, err := PostVal(views, []*Card{&card1, &card2}, true)
	if err != nil {
		panic(err)
	}
	if _, err := p.Propagate(); err != nil {
		panic(err)
	}

	fmt.Println("a:", a)
	fmt.Println("b:", b)
	fmt.Println("c:", c)
	// Output:
	// a: a={1}
	// b: b={2}
	// c: c={2}
}
