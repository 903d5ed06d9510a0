// SPDX-License-Identifier: MIT

package netfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayesnet/network"
)

var (
	// ErrSyntax wraps YAML parse errors.
	ErrSyntax = errors.New("netfile: malformed YAML")

	// ErrSchema indicates a well-formed document with a structural problem.
	ErrSchema = errors.New("netfile: invalid document")
)

// Document is the YAML form of a network.
type Document struct {
	Name      string         `yaml:"name,omitempty"`
	Variables []VariableSpec `yaml:"variables"`
	Edges     [][]string     `yaml:"edges,omitempty"`
	CPDs      []CPDSpec      `yaml:"cpds"`
}

// VariableSpec declares one variable.
type VariableSpec struct {
	Name   string   `yaml:"name"`
	Card   int      `yaml:"card"`
	States []string `yaml:"states,omitempty"`
}

// CPDSpec is one raw conditional probability table.
type CPDSpec struct {
	Variable     string      `yaml:"variable"`
	Evidence     []string    `yaml:"evidence,omitempty"`
	EvidenceCard []int       `yaml:"evidence_card,omitempty"`
	Values       [][]float64 `yaml:"values"`
}

// Decode parses one document from r and checks its shape.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSchema)
		}

		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// check enforces the structural rules the network builder cannot see:
// named variables, state labels matching the cardinality, edge pairs.
func (d *Document) check() error {
	if len(d.Variables) == 0 {
		return fmt.Errorf("%w: no variables", ErrSchema)
	}
	for i, v := range d.Variables {
		if v.Name == "" {
			return fmt.Errorf("%w: variables[%d] has no name", ErrSchema, i)
		}
		if len(v.States) > 0 && len(v.States) != v.Card {
			return fmt.Errorf("%w: variable %q has %d state labels for cardinality %d",
				ErrSchema, v.Name, len(v.States), v.Card)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return fmt.Errorf("%w: edges[%d] must be a [parent, child] pair, got %d names", ErrSchema, i, len(e))
		}
	}
	for i, c := range d.CPDs {
		if c.Variable == "" {
			return fmt.Errorf("%w: cpds[%d] has no variable", ErrSchema, i)
		}
	}

	return nil
}

// Build creates the network described by d. Builder errors (duplicate
// variable, unknown edge endpoint) are returned with document context, and a
// second CPD for the same variable is ErrSchema; CPD content is validated
// later by CheckModel.
func (d *Document) Build(opts ...network.Option) (*network.Network, error) {
	n := network.New(opts...)
	cards := make(map[string]int, len(d.Variables))
	for _, v := range d.Variables {
		if err := n.AddVariable(v.Name, v.Card); err != nil {
			return nil, fmt.Errorf("netfile: variable %q: %w", v.Name, err)
		}
		cards[v.Name] = v.Card
	}
	for _, e := range d.Edges {
		if err := n.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("netfile: edge %s -> %s: %w", e[0], e[1], err)
		}
	}
	seen := make(map[string]int, len(d.CPDs))
	for i, c := range d.CPDs {
		if j, dup := seen[c.Variable]; dup {
			return nil, fmt.Errorf("%w: cpds[%d]: duplicate CPD for %q (first at cpds[%d])", ErrSchema, i, c.Variable, j)
		}
		seen[c.Variable] = i
		ecard := c.EvidenceCard
		if ecard == nil && len(c.Evidence) > 0 {
			ecard = make([]int, len(c.Evidence))
			for k, e := range c.Evidence {
				ecard[k] = cards[e] // 0 for unknown names; CheckModel reports them
			}
		}
		cpd := network.NewTabularCPD(c.Variable, cards[c.Variable], c.Values, c.Evidence, ecard)
		if err := n.SetCPD(cpd); err != nil {
			return nil, fmt.Errorf("netfile: cpd %q: %w", c.Variable, err)
		}
	}

	return n, nil
}

// StateName returns the label of state s of variable name, or the decimal
// state index when the document declares no labels.
func (d *Document) StateName(name string, s int) string {
	for _, v := range d.Variables {
		if v.Name == name && s >= 0 && s < len(v.States) {
			return v.States[s]
		}
	}

	return strconv.Itoa(s)
}

// StateIndex resolves a label or decimal index to a state of variable name.
func (d *Document) StateIndex(name, label string) (int, error) {
	for _, v := range d.Variables {
		if v.Name != name {
			continue
		}
		for i, st := range v.States {
			if st == label {
				return i, nil
			}
		}
		s, err := strconv.Atoi(label)
		if err != nil {
			return 0, fmt.Errorf("%w: variable %q has no state %q", ErrSchema, name, label)
		}

		return s, nil
	}

	return 0, fmt.Errorf("%w: unknown variable %q", ErrSchema, name)
}

// FromNetwork captures n as a document. State labels are not known to the
// network and are omitted.
func FromNetwork(name string, n *network.Network) *Document {
	doc := &Document{Name: name}
	for _, v := range n.Variables() {
		doc.Variables = append(doc.Variables, VariableSpec{Name: v.Name, Card: v.Card})
		if cpd, ok := n.CPD(v.Name); ok {
			doc.CPDs = append(doc.CPDs, CPDSpec{
				Variable:     cpd.Variable,
				Evidence:     cpd.Evidence,
				EvidenceCard: cpd.EvidenceCard,
				Values:       cpd.Values,
			})
		}
	}
	for _, e := range n.Edges() {
		doc.Edges = append(doc.Edges, []string{e[0], e[1]})
	}

	return doc
}

// Encode writes d as YAML with two-space indentation.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("netfile: encode: %w", err)
	}

	return enc.Close()
}
