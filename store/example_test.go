package store_test

import (
	"fmt"

	"github.com/0xalexb/hjarta-cfg/store"
)

func Example() {
	s, err := store.New("../testdata/test.cfg")
	if err != nil {
		fmt.Println(err)

		return
	}

	vec, _ := store.Vec2[int](s, "parent", "vec")
	str, _ := s.String("name", "multistr")
	arr, _ := store.Array[int](s, "name", "array")
	attrs, _ := s.Attributes("name")

	fmt.Println(vec.X, vec.Y)
	fmt.Println(str)
	fmt.Println(arr)
	fmt.Println(attrs)
	// Output:
	// 10 20
	// a string that spans two lines
	// [1 2 3]
	// [visible two words]
}

func ExampleStore_Decode() {
	s, err := store.Parse("", []byte(`
[window]
title = "Main"
size = {800, 600}
resizable = yes
`))
	if err != nil {
		fmt.Println(err)

		return
	}

	var window struct {
		Title     string             `cfg:"title"`
		Size      store.Vector2[int] `cfg:"size"`
		Resizable bool               `cfg:"resizable"`
	}

	err = s.Decode("window", &window)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(window.Title, window.Size, window.Resizable)
	// Output: Main (800, 600) true
}

func ExampleGet() {
	s, _ := store.Parse("", []byte("[limits]\nmax = 0xFF\n"))

	limit, _ := store.Get[uint8](s, "limits", "max")
	_, err := store.Get[int8](s, "limits", "max")

	fmt.Println(limit)
	fmt.Println(err)
	// Output:
	// 255
	// section "limits" key "max": value out of range: "0xFF" does not fit in int8
}
