package uniquelines_test

import (
	"fmt"
	"strings"

	uniquelines "github.com/CHUKEPC/unique-lines"
)

func ExampleProcess() {
	input := strings.NewReader("apple\nbanana\napple\ncherry\nbanana\n")
	var output strings.Builder

	res, err := uniquelines.Process(input, &output, nil)
	if err != nil {
		fmt.Printf("err: %s", err.Error())
		return
	}

	fmt.Print(output.String())
	fmt.Printf("unique=%d duplicates=%d\n", res.Unique, res.Duplicates)
	// Output:
	// apple
	// banana
	// cherry
	// unique=3 duplicates=2
}

func ExampleUniq() {
	in := make(chan string)
	go func() {
		for _, s := range []string{"red", "green", "red", "blue", "green"} {
			in <- s
		}
		close(in)
	}()

	for s := range uniquelines.Uniq(in) {
		fmt.Println(s)
	}
	// Output:
	// red
	// green
	// blue
}
