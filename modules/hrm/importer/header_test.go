package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckHeaderAcceptsContract(t *testing.T) {
	require.True(t, CheckHeader(RequiredHeader()))
}

func TestCheckHeaderIsCaseAndSpaceInsensitive(t *testing.T) {
	header := RequiredHeader()
	header[0] = "  NOME "
	header[4] = "Sexo"
	require.True(t, CheckHeader(header))
}

func TestCheckHeaderRejectsDeviations(t *testing.T) {
	missing := RequiredHeader()[1:]
	require.False(t, CheckHeader(missing), "missing column")

	misspelled := RequiredHeader()
	misspelled[1] = "cfp"
	require.False(t, CheckHeader(misspelled), "misspelled column")

	reordered := RequiredHeader()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	require.False(t, CheckHeader(reordered), "reordered columns")

	extra := append(RequiredHeader(), "extra")
	require.False(t, CheckHeader(extra), "unexpected column")

	require.False(t, CheckHeader(nil), "empty header")
}
