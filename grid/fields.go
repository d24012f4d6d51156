package grid

import (
	"fmt"

	"github.com/notargets/goscat/utils"
)

// Fields is a store of named scalar fields attached to the nodes or links of
// one raster. Fields are created zero-initialized and mutated in place.
type Fields struct {
	G     *Raster
	nodes map[string]utils.Vector
	links map[string]utils.Vector
}

func NewFields(g *Raster) *Fields {
	return &Fields{
		G:     g,
		nodes: make(map[string]utils.Vector),
		links: make(map[string]utils.Vector),
	}
}

func (f *Fields) AddZerosAtNodes(name string) utils.Vector {
	if _, present := f.nodes[name]; present {
		panic(fmt.Errorf("node field %q already exists", name))
	}
	v := utils.NewVector(f.G.Nnodes)
	f.nodes[name] = v
	return v
}

func (f *Fields) AddZerosAtLinks(name string) utils.Vector {
	if _, present := f.links[name]; present {
		panic(fmt.Errorf("link field %q already exists", name))
	}
	v := utils.NewVector(f.G.Nlinks)
	f.links[name] = v
	return v
}

func (f *Fields) AtNodes(name string) utils.Vector {
	v, present := f.nodes[name]
	if !present {
		panic(fmt.Errorf("no node field %q", name))
	}
	return v
}

func (f *Fields) AtLinks(name string) utils.Vector {
	v, present := f.links[name]
	if !present {
		panic(fmt.Errorf("no link field %q", name))
	}
	return v
}
