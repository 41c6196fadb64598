package readfiles

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// A flat 3x3 square and a copy whose four middle points are raised to z = 1
var inputFile = []byte(`2
1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16
1, 2, 3, 4, 5, 17, 18, 8, 9, 19, 20, 12, 13, 14, 15, 16
20
0, 0, 0
0, 1, 0
0, 2, 0
0, 3, 0
1, 0, 0
1, 1, 0
1, 2, 0
1, 3, 0
2, 0, 0
2, 1, 0
2, 2, 0
2, 3, 0
3, 0, 0
3, 1, 0
3, 2, 0
3, 3, 0
1, 1, 1
1, 2, 1
2, 1, 1
2, 2, 1`)

func TestReadUtah(t *testing.T) {
	{
		S, err := ReadUtahFrom(bytes.NewReader(inputFile))
		require.NoError(t, err)
		require.Len(t, S, 2)
		assert.Equal(t, 3, S[0].DegreeXi())
		assert.Equal(t, 3, S[0].DegreeEta())
		assert.Equal(t, types.Point{X: 1, Y: 1, Z: 1}, S[1].ControlPoints[1][1])
		assert.True(t, types.Point{X: 1.5, Y: 1.5, Z: 0}.ApproxEquals(S[0].Evaluate(0.5, 0.5), 1e-15))
		assert.True(t, types.Point{X: 1.5, Y: 1.5, Z: 0.5625}.ApproxEquals(S[1].Evaluate(0.5, 0.5), 1e-15))
		assert.Equal(t, types.Point{X: 3, Y: 3, Z: 0}, S[1].Evaluate(1, 1))
	}
	{
		path := filepath.Join(t.TempDir(), "patches")
		require.NoError(t, os.WriteFile(path, inputFile, 0644))
		S, err := ReadUtah(path, false)
		require.NoError(t, err)
		assert.Len(t, S, 2)
		_, err = ReadUtah(filepath.Join(t.TempDir(), "missing"), false)
		assert.Error(t, err)
	}
	{ // Malformed files
		for _, input := range []string{
			"",
			"two\n",
			"1\n1,2,3\n",
			"1\n" + "1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,x\n",
			"1\n1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16\n16\n0, 0, 0\n",
			"1\n1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16\n1\n0, 0\n",
			"1\n1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16\n1\n0, 0, z\n",
			"1\n1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16\n1\n0, 0, 0\n",
			// Counts far beyond the lines present
			"999999999999\n1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16\n",
			"1\n1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16\n999999999999\n0, 0, 0\n",
		} {
			_, err := ReadUtahFrom(bytes.NewReader([]byte(input)))
			assert.True(t, errors.Is(err, utils.ErrInvalidGeometry), "input %q: %v", input, err)
		}
	}
}
