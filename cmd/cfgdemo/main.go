// Command cfgdemo loads a .cfg file and prints a few values from it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-cfg/store"
)

func main() {
	path := flag.String("file", "test.cfg", "path of the .cfg file")
	flag.Parse()

	err := run(os.Stdout, *path)
	if err != nil {
		slog.Error("cfgdemo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(w io.Writer, path string) error {
	s, err := store.New(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	vec, err := store.Vec2[int](s, "parent", "vec")
	if err != nil {
		return err //nolint:wrapcheck
	}

	multistr, err := s.String("name", "multistr")
	if err != nil {
		return err //nolint:wrapcheck
	}

	array, err := store.Array[int](s, "name", "array")
	if err != nil {
		return err //nolint:wrapcheck
	}

	attrs, err := s.Attributes("name")
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(w, "vec is: %d, %d\n", vec.X, vec.Y)
	fmt.Fprintf(w, "multistring is: %s\n", multistr)

	fmt.Fprint(w, "array is: ")

	for _, v := range array {
		fmt.Fprintf(w, "%d, ", v)
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, "attribs is: ")

	for _, a := range attrs {
		fmt.Fprintf(w, "%s, ", a)
	}

	fmt.Fprintln(w)

	return nil
}
