package cliargs

import (
	"errors"
	"testing"

	"github.com/mikeschinkel/go-dt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLineSplitErrorMetadata(t *testing.T) {
	_, err := ParseCommandLine(`-name="unterminated`)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrCommandLineSplitFailed))
	line, ok := dt.ErrValue[string](err, "command_line")
	require.True(t, ok)
	assert.Equal(t, `-name="unterminated`, line)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	causes := joined.Unwrap()
	require.Len(t, causes, 2, "entry first, shlex cause last")
	assert.False(t, errors.Is(causes[1], ErrCommandLineSplitFailed))
}

func TestFlagValidationErrorMetadata(t *testing.T) {
	err := (&FlagDef{Name: "Bad_Name", Usage: "u", Bool: new(bool)}).Validate()
	require.Error(t, err)

	assert.True(t, errors.Is(err, dt.ErrInvalidFlagName))
	assert.True(t, errors.Is(err, dt.ErrFlagValidationFailed))
	name, ok := dt.ErrValue[string](err, "flag_name")
	require.True(t, ok)
	assert.Equal(t, "Bad_Name", name)

	keys := make([]string, 0)
	for _, kv := range dt.ErrMeta(err) {
		keys = append(keys, kv.Key())
	}
	assert.Equal(t, []string{"rule", "flag_name"}, keys)
}

func TestFlagValidationCombinesEveryFailure(t *testing.T) {
	err := (&FlagDef{Usage: " "}).Validate()
	require.Error(t, err)

	assert.True(t, errors.Is(err, dt.ErrEmpty))
	assert.True(t, errors.Is(err, ErrFlagTypeNotDiscoverable))
	assert.True(t, errors.Is(err, dt.ErrFlagValidationFailed))
	assert.Contains(t, err.Error(), "empty_property=Name")
	assert.Contains(t, err.Error(), "empty_property=Usage")
}

func TestFlagBindingErrorWrapsValidation(t *testing.T) {
	fs := &FlagSet{Name: "broken", FlagDefs: []FlagDef{{Name: "x", Usage: "u"}}}

	err := fs.Bind(parse("-x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFlagBindingFailed))
	assert.True(t, errors.Is(err, ErrFlagTypeNotDiscoverable))
	assert.True(t, errors.Is(err, dt.ErrFlagValidationFailed))
	assert.Contains(t, err.Error(), "flag_set=broken")
}

func TestValidFlagSetHasNoError(t *testing.T) {
	var f serverFlags
	assert.NoError(t, newServerFlagSet(&f).Validate())
	assert.NoError(t, newServerFlagSet(&f).Bind(parse("")))
}
