package netfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/internal/fixtures"
	"github.com/katalvlaran/bayesnet/netfile"
	"github.com/katalvlaran/bayesnet/network"
)

func TestLoad_AlarmMatchesFixture(t *testing.T) {
	doc, err := netfile.Load("testdata/alarm.yaml")
	require.NoError(t, err)
	assert.Equal(t, "alarm", doc.Name)

	got, err := doc.Build()
	require.NoError(t, err)
	require.NoError(t, got.CheckModel())

	want, err := fixtures.Alarm()
	require.NoError(t, err)
	assert.Equal(t, want.Nodes(), got.Nodes())
	assert.Equal(t, want.Edges(), got.Edges())
	for _, name := range want.Nodes() {
		w, _ := want.CPD(name)
		g, ok := got.CPD(name)
		require.True(t, ok, name)
		if diff := cmp.Diff(w, g); diff != "" {
			t.Errorf("CPD %s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoad_EvidenceCardDerived(t *testing.T) {
	doc, err := netfile.Load("testdata/sprinkler.yaml")
	require.NoError(t, err)
	n, err := doc.Build()
	require.NoError(t, err)
	require.NoError(t, n.CheckModel())

	wet, ok := n.CPD("WetGrass")
	require.True(t, ok)
	assert.Equal(t, []int{2, 2}, wet.EvidenceCard)

	// three-state parent P of X
	const head = "variables:\n  - {name: P, card: 3}\n  - {name: X, card: 2}\n" +
		"edges:\n  - [P, X]\n" +
		"cpds:\n  - {variable: P, values: [[0.2], [0.3], [0.5]]}\n"
	cases := []struct {
		name  string
		cpd   string
		ecard []int
		want  error // nil means CheckModel passes
	}{
		{"derived", "  - {variable: X, evidence: [P], values: [[0.1, 0.5, 0.9], [0.9, 0.5, 0.1]]}\n", []int{3}, nil},
		{"explicit matches", "  - {variable: X, evidence: [P], evidence_card: [3], values: [[0.1, 0.5, 0.9], [0.9, 0.5, 0.1]]}\n", []int{3}, nil},
		{"explicit mismatch", "  - {variable: X, evidence: [P], evidence_card: [2], values: [[0.1, 0.9], [0.9, 0.1]]}\n", []int{2}, network.ErrCardinalityMismatch},
		{"derived but binary table", "  - {variable: X, evidence: [P], values: [[0.1, 0.9], [0.9, 0.1]]}\n", []int{3}, network.ErrTableShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := netfile.Decode(strings.NewReader(head + tc.cpd))
			require.NoError(t, err)
			n, err := doc.Build()
			require.NoError(t, err)

			x, ok := n.CPD("X")
			require.True(t, ok)
			assert.Equal(t, tc.ecard, x.EvidenceCard)

			err = n.CheckModel()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			var ve *network.ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Violations)
			for _, v := range ve.Violations {
				assert.Equal(t, "X", v.Variable)
				assert.ErrorIs(t, v, tc.want)
			}
		})
	}
}

func TestLoad_InvalidModelsDecodeButFailCheck(t *testing.T) {
	for file, kind := range map[string]error{
		"testdata/bad_column.yaml": network.ErrColumnSum,
		"testdata/cyclic.yaml":     network.ErrCycle,
	} {
		doc, err := netfile.Load(file)
		require.NoError(t, err, file)
		n, err := doc.Build()
		require.NoError(t, err, file)
		assert.ErrorIs(t, n.CheckModel(), kind, file)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"syntax", "variables: [", netfile.ErrSyntax},
		{"unknown key", "variables:\n  - {name: A, card: 2, colour: red}\ncpds: []\n", netfile.ErrSyntax},
		{"empty", "", netfile.ErrSchema},
		{"no variables", "cpds: []\n", netfile.ErrSchema},
		{"unnamed variable", "variables:\n  - {card: 2}\n", netfile.ErrSchema},
		{"state labels", "variables:\n  - {name: A, card: 2, states: [x]}\n", netfile.ErrSchema},
		{"edge triple", "variables:\n  - {name: A, card: 2}\nedges:\n  - [A, B, C]\n", netfile.ErrSchema},
		{"cpd without variable", "variables:\n  - {name: A, card: 2}\ncpds:\n  - values: [[1]]\n", netfile.ErrSchema},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netfile.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := netfile.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestBuild_BuilderErrors(t *testing.T) {
	doc := &netfile.Document{
		Variables: []netfile.VariableSpec{{Name: "A", Card: 2}},
		Edges:     [][]string{{"A", "B"}},
	}
	_, err := doc.Build()
	assert.ErrorIs(t, err, network.ErrUnknownVariable)

	doc = &netfile.Document{
		Variables: []netfile.VariableSpec{{Name: "A", Card: 2}},
		CPDs:      []netfile.CPDSpec{{Variable: "Z", Values: [][]float64{{1}}}},
	}
	_, err = doc.Build()
	assert.ErrorIs(t, err, network.ErrUnknownVariable)
}

func TestBuild_DuplicateCPD(t *testing.T) {
	// the first CPD is invalid; a later one must not silently replace it
	const src = `
variables:
  - {name: A, card: 2}
cpds:
  - {variable: A, values: [[0.5], [0.4]]}
  - {variable: A, values: [[0.3], [0.7]]}
`
	doc, err := netfile.Decode(strings.NewReader(src))
	require.NoError(t, err)
	n, err := doc.Build()
	assert.Nil(t, n)
	require.ErrorIs(t, err, netfile.ErrSchema)
	assert.Contains(t, err.Error(), `cpds[1]: duplicate CPD for "A"`)
}

func TestStateLabels(t *testing.T) {
	doc, err := netfile.Load("testdata/alarm.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ringing", doc.StateName("Alarm", 1))
	assert.Equal(t, "1", doc.StateName("JohnCalls", 1))

	s, err := doc.StateIndex("Burglary", "yes")
	require.NoError(t, err)
	assert.Equal(t, 1, s)
	s, err = doc.StateIndex("JohnCalls", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, s)
	_, err = doc.StateIndex("Alarm", "loud")
	assert.ErrorIs(t, err, netfile.ErrSchema)
	_, err = doc.StateIndex("Nope", "1")
	assert.ErrorIs(t, err, netfile.ErrSchema)
}

func TestEncode_RoundTrip(t *testing.T) {
	n, err := fixtures.Sprinkler()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, netfile.Encode(&buf, netfile.FromNetwork("sprinkler", n)))
	assert.Contains(t, buf.String(), "name: sprinkler")
	assert.Contains(t, buf.String(), "evidence_card:")

	doc, err := netfile.Decode(&buf)
	require.NoError(t, err)
	back, err := doc.Build()
	require.NoError(t, err)
	require.NoError(t, back.CheckModel())
	assert.Equal(t, n.Edges(), back.Edges())
	w, _ := n.CPD("WetGrass")
	g, _ := back.CPD("WetGrass")
	assert.Equal(t, w, g)
}
