package fuse

import (
	"errors"
	"fmt"
	"io"
)

func ExampleNew() {
	pr, pw := io.Pipe()
	reader, f := New(pr)

	go func() {
		guard, _ := f.Arm()
		defer guard.Close()

		pw.Write([]byte("all good"))

		guard.Release()
		pw.Close()
	}()

	data, err := io.ReadAll(reader)
	fmt.Println(string(data), err)

	// Output:
	// all good <nil>
}

func ExampleFuse_Protect() {
	pr, pw := io.Pipe()
	reader, f := New(pr)

	go func() {
		defer pw.Close()
		f.Protect(func() error {
			pw.Write([]byte("partial"))
			return errors.New("upstream rejected the batch")
		})
	}()

	data, err := io.ReadAll(reader)
	fmt.Println(string(data))
	fmt.Println(err)

	// Output:
	// partial
	// upstream rejected the batch
}
