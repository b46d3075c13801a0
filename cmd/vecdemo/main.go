// Command vecdemo loads a YAML list of integers into a vector, edits it and
// prints the result as text, JSON and YAML.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/container/arena"
	"github.com/pavanmanishd/container/owned"
	"github.com/pavanmanishd/container/vector"
)

func main() {
	input := flag.String("input", "", "YAML file holding a list of integers (default: 1..5)")
	flag.Parse()

	v, err := load(*input)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	defer v.Destroy()
	log.Printf("loaded %d elements: %s", v.Len(), v)

	v.PushBack(v.Len() + 1)
	v.Insert(v.Begin().Add(v.Len()/2), 100)
	v.Erase(v.Begin())
	log.Printf("edited: %s", v)

	if _, err := v.At(v.Len()); err != nil {
		log.Printf("bounds check: %v", err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("encode json: %v", err)
	}
	fmt.Println(string(out))

	out, err = yaml.Marshal(v)
	if err != nil {
		log.Fatalf("encode yaml: %v", err)
	}
	fmt.Print(string(out))

	scratch(v)
	m := v.Metrics()
	log.Printf("len=%d cap=%d allocations=%d utilization=%.2f", m.Len, m.Cap, m.Allocations, m.Utilization)
}

func load(path string) (*vector.Vector[int], error) {
	if path == "" {
		return vector.Of(1, 2, 3, 4, 5), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	v := vector.New[int]()
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// scratch sums v through an arena-backed block that is returned to the
// arena when its owner is destroyed.
func scratch(v *vector.Vector[int]) {
	a := arena.NewArena(0)
	defer a.Release()

	block := owned.MakeArrayIn[int64](a, v.Len())
	defer block.Destroy()

	var sum int64
	for i, x := range v.All() {
		*block.At(i) = int64(x)
		sum += *block.At(i)
	}
	log.Printf("scratch sum=%d arena bytes=%d live blocks=%d", sum, a.SizeInUse(), a.LiveBlocks())
}
