package collections_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-typex/collections"
	"github.com/hasbyte1/go-typex/query"
)

func ExampleCollection_Select() {
	c := collections.New(1, 2, 3, 4, 5, 6)
	evens, odds, _ := c.Select(func(n int) bool { return n%2 == 0 }, query.Split, 0)
	fmt.Println(evens.All(), odds.All())
	// Output: [2 4 6] [1 3 5]
}

func ExampleCollection_ForEach() {
	type server struct {
		Host string
		Port int
	}
	c := collections.New(server{"db", 5432}, server{"cache", 6379})
	hosts, _ := c.ForEach(query.Member("Host"))
	fmt.Println(hosts.All())
	// Output: [db cache]
}

func ExampleCollection_SkipUntil() {
	c := collections.New(1, 2, 3, 4, 5)
	rest, _ := c.SkipUntil(func(n int) bool { return n > 2 })
	fmt.Println(rest.All())
	// Output: [3 4 5]
}

func ExampleMap() {
	labels, _ := collections.Map(collections.New(1, 2, 3), func(n int) string {
		return "#" + strconv.Itoa(n)
	})
	joined, _ := labels.Implode(", ", func(s string) string { return s })
	fmt.Println(joined)
	// Output: #1, #2, #3
}

func ExampleFlatten() {
	c := collections.New[any](1, []any{2, []int{3}}, "x")
	fmt.Println(collections.Flatten(c).All())
	// Output: [1 2 3 x]
}
