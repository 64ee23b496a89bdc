// Package drawer renders a pipeline's node chain as a Graphviz DOT file,
// with vertices colored by the colorspace each node emits.
package drawer

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe"
	"github.com/rawpipe/go-rawpipe/pkg/pixelpipe/model"
)

// Drawer collects nodes and links and renders them to a file.
type Drawer interface {
	AddNode(name string, enabled bool, cst model.Colorspace) error
	AddLink(parentName, childName string) error
	Draw() error
}

// DotDrawer writes the pipeline graph as a DOT file.
type DotDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

var _ Drawer = (*DotDrawer)(nil)

// NewDotDrawer creates a drawer that renders into the given file.
func NewDotDrawer(dotFileName string) *DotDrawer {
	return &DotDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddNode adds one pipeline node to the graph. Disabled nodes render
// dashed and gray; enabled ones are filled with their colorspace color.
func (d *DotDrawer) AddNode(name string, enabled bool, cst model.Colorspace) error {
	attrs := []func(*graph.VertexProperties){
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", colorspaceHex(cst)),
	}
	if !enabled {
		attrs = []func(*graph.VertexProperties){
			graph.VertexAttribute("shape", "box"),
			graph.VertexAttribute("style", "dashed"),
			graph.VertexAttribute("color", "gray"),
			graph.VertexAttribute("fontcolor", "gray"),
		}
	}

	if err := d.graph.AddVertex(name, attrs...); err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}
	return nil
}

// AddLink adds the dataflow edge between two nodes.
func (d *DotDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}
	return nil
}

// Draw writes the DOT file.
func (d *DotDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	if err := dot(d.graph, file); err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.dotFileName)
	}
	return nil
}

// Render draws the full node chain of a pipeline into one DOT file. Node
// labels carry the instance number when it is non-zero.
func Render(pipe *pixelpipe.Pipeline, dotFileName string) error {
	d := NewDotDrawer(dotFileName)

	prev := ""
	for _, n := range pipe.Nodes() {
		name := n.Name()
		if inst := n.Module.Instance(); inst != 0 {
			name = fmt.Sprintf("%s[%d]", name, inst)
		}

		if err := d.AddNode(name, n.Enabled, n.DscOut.Cst); err != nil {
			return err
		}
		if prev != "" {
			if err := d.AddLink(prev, name); err != nil {
				return err
			}
		}
		prev = name
	}

	return d.Draw()
}

// colorspaceHex maps a colorspace tag to a fill color.
func colorspaceHex(cst model.Colorspace) string {
	var r, g, b uint8
	switch cst {
	case model.CSRaw:
		r, g, b = 120, 120, 120
	case model.CSLab:
		r, g, b = 175, 140, 210
	case model.CSRGB:
		r, g, b = 130, 170, 220
	case model.CSLCH:
		r, g, b = 210, 160, 120
	case model.CSHSL:
		r, g, b = 150, 200, 150
	case model.CSJzCzHz:
		r, g, b = 220, 200, 120
	default:
		r, g, b = 230, 230, 230
	}

	c, err := colors.RGB(r, g, b) //nolint
	if err != nil {
		return "#e6e6e6"
	}
	return c.ToHEX().String()
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the DOT rendering.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	if err := tpl.Execute(wrt, desc); err != nil {
		return errors.Wrap(err, "unable to execute template")
	}
	return nil
}
