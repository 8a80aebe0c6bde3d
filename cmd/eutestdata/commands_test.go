package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eutestdata/internal/iban"
	"eutestdata/internal/personalid"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	var cli CLI
	g := &Globals{Out: &out, Err: &errOut}
	parser, err := kong.New(&cli,
		kong.Name("eutestdata"),
		kong.Bind(g),
		kong.Writers(&out, &errOut),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	g.init(slog.LevelError)
	err = ctx.Run(g)
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestIBANGenerate(t *testing.T) {
	out, _, err := run(t, "iban", "generate", "--country", "DE", "--count", "3", "--seed", "4")
	require.NoError(t, err)

	codes := lines(out)
	require.Len(t, codes, 3)
	for _, code := range codes {
		assert.Len(t, code, 22)
		assert.True(t, iban.Validate(code), code)
	}

	again, _, err := run(t, "iban", "generate", "--country", "DE", "--count", "3", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestIBANGenerateDetails(t *testing.T) {
	out, _, err := run(t, "iban", "generate", "-c", "NL", "-n", "2", "--spaces", "--details")
	require.NoError(t, err)
	for _, line := range lines(out) {
		assert.True(t, strings.HasPrefix(line, "NL"), line)
		assert.Contains(t, line, "valid")
		assert.NotContains(t, line, "invalid")
	}
}

func TestIBANGenerateUnsupportedCountry(t *testing.T) {
	_, _, err := run(t, "iban", "generate", "--country", "US")
	require.Error(t, err)
	assert.Equal(t, `unsupported country "US"`, err.Error())
}

func TestIBANValidate(t *testing.T) {
	out, _, err := run(t, "iban", "validate", "DE89 3704 0044 0532 0130 00")
	require.NoError(t, err)
	assert.Equal(t, "DE89 3704 0044 0532 0130 00\tvalid\n", out)

	out, _, err = run(t, "iban", "validate", "DE89370400440532013000", "DE89370400440532013001")
	assert.EqualError(t, err, "1 of 2 IBANs are invalid")
	assert.Contains(t, out, "DE89 3704 0044 0532 0130 01\tinvalid")
}

func TestIBANFormat(t *testing.T) {
	out, _, err := run(t, "iban", "format", "de89370400440532013000")
	require.NoError(t, err)
	assert.Equal(t, "DE89 3704 0044 0532 0130 00\n", out)
}

func TestCountries(t *testing.T) {
	out, _, err := run(t, "iban", "countries")
	require.NoError(t, err)
	assert.Len(t, lines(out), len(iban.SupportedCountries()))
	assert.Contains(t, out, "Germany")

	out, _, err = run(t, "id", "countries")
	require.NoError(t, err)
	assert.Len(t, lines(out), len(personalid.NewRegistry().ListCountries()))
	assert.Contains(t, out, "Estonia")
}

func TestIDGenerate(t *testing.T) {
	out, _, err := run(t, "id", "generate", "--country", "LT", "--count", "4", "--gender", "female", "--year", "1999", "--details")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 4)
	for _, row := range rows {
		fields := strings.Fields(row)
		require.Len(t, fields, 4, row)
		assert.Equal(t, "Female", fields[1])
		assert.True(t, strings.HasPrefix(fields[2], "1999-"), row)
		assert.Equal(t, "valid", fields[3])
	}
}

func TestIDGenerateDefaultsToEstonia(t *testing.T) {
	out, _, err := run(t, "id", "generate")
	require.NoError(t, err)
	code := strings.TrimSpace(out)
	assert.Len(t, code, 11)
}

func TestIDGenerateUnsatisfiable(t *testing.T) {
	_, _, err := run(t, "id", "generate", "--country", "CZ", "--year", "1900")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Czechia")
}

func TestIDParse(t *testing.T) {
	out, _, err := run(t, "id", "parse", "--country", "EE", "37605030299", "97605030299")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"37605030299", "Male", "1976-05-03", "valid"}, strings.Fields(rows[0]))
	assert.Equal(t, []string{"97605030299", "-", "-", "invalid"}, strings.Fields(rows[1]))
}

func TestIDParseMalformed(t *testing.T) {
	out, _, err := run(t, "id", "parse", "-c", "EE", "123")
	require.Error(t, err)
	assert.Contains(t, out, "malformed")

	_, _, err = run(t, "id", "parse", "-c", "XX", "123")
	assert.EqualError(t, err, `unsupported country "XX"`)
}
