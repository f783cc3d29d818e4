package colorgrad_test

import (
	"fmt"
	"log"

	"github.com/gogpu/colorgrad"
)

func ExampleBuilder() {
	g, err := colorgrad.NewBuilder().
		HTMLColors("deeppink", "gold", "seagreen").
		Domain(0, 100).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(g.At(0).HexString())
	fmt.Println(g.At(50).HexString())
	fmt.Println(g.At(100).HexString())
	// Output:
	// #ff1493
	// #ffd700
	// #2e8b57
}

func ExampleGradient_Sharp() {
	g, err := colorgrad.New(colorgrad.WithColors(colorgrad.Red, colorgrad.Blue))
	if err != nil {
		log.Fatal(err)
	}

	s := g.Sharp(3, 0)
	for _, t := range []float64{0.1, 0.5, 0.9} {
		fmt.Println(s.At(t).ToRGBA8())
	}
	// Output:
	// [255 0 0 255]
	// [128 0 128 255]
	// [0 0 255 255]
}

func ExampleNew() {
	_, err := colorgrad.New(
		colorgrad.WithHTMLColors("red", "not-a-color", "#12"),
	)
	fmt.Println(err)
	// Output:
	// colorgrad: invalid html colors: 'not-a-color', '#12'
}
