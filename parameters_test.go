package cliargs

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetArgs mirrors how a host resets the process-wide table between
// cases, clearing it again when the test ends.
func resetArgs(t *testing.T, args ...string) *Table {
	t.Helper()
	t.Cleanup(func() { SetParameters(nil) })
	return ResetParameters(args)
}

func TestParametersBeforeReset(t *testing.T) {
	SetParameters(nil)
	require.NotNil(t, Parameters())
	assert.Equal(t, 0, Parameters().Len())
	assert.Equal(t, "eleven", GetArg("-wip", "eleven"))
	assert.Equal(t, int64(11), GetIntArg("-wip", 11))
	assert.True(t, GetBoolArg("-wip", true))
	assert.False(t, IsArgSet("-wip"))
	assert.Nil(t, GetArgs("-wip"))
}

func TestResetParametersReplacesTable(t *testing.T) {
	first := resetArgs(t, "-wip=11", "-bar")
	assert.Same(t, first, Parameters())
	assert.Equal(t, int64(11), GetIntArg("-wip", 0))
	assert.True(t, IsArgSet("-bar"))

	resetArgs(t, "-nowip")
	assert.False(t, GetBoolArg("-wip", true))
	assert.False(t, IsArgSet("-bar"), "tables are not merged across parses")
	assert.Equal(t, "11", first.GetArg("-wip", ""), "old snapshots stay intact")
}

func TestParseOSArgsSkipsProgramName(t *testing.T) {
	t.Cleanup(func() { SetParameters(nil) })

	ParseOSArgs([]string{"-prog", "-wip=verbose"})
	assert.Equal(t, "verbose", GetArg("-wip", ""))
	assert.False(t, IsArgSet("-prog"))

	ParseOSArgs(nil)
	assert.Equal(t, 0, Parameters().Len())
}

func TestGlobalSoftSetArg(t *testing.T) {
	resetArgs(t, "-wip=1")

	assert.False(t, SoftSetArg("-wip", "2"))
	assert.Equal(t, "1", GetArg("-wip", ""))

	assert.True(t, SoftSetBoolArg("-listen", true))
	assert.True(t, GetBoolArg("-listen", false))
	assert.False(t, SoftSetBoolArg("-listen", false))
}

func TestGlobalSoftSetArgBeforeReset(t *testing.T) {
	SetParameters(nil)
	t.Cleanup(func() { SetParameters(nil) })

	assert.True(t, SoftSetArg("-datadir", "/tmp"))
	assert.Equal(t, "/tmp", GetArg("-datadir", ""))
	assert.Equal(t, 0, emptyTable.Len(), "the shared empty table must stay empty")
}

func TestConcurrentReadersSeeWholeTables(t *testing.T) {
	resetArgs(t, "-a=0", "-b=0")

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 1)

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				table := Parameters()
				if table.GetArg("-a", "") != table.GetArg("-b", "") {
					select {
					case errs <- table.String():
					default:
					}
					return
				}
			}
		}()
	}

	for i := range 200 {
		v := strconv.Itoa(i)
		ResetParameters([]string{"-a=" + v, "-b=" + v})
	}
	close(stop)
	wg.Wait()

	select {
	case got := <-errs:
		t.Fatalf("reader observed a partially built table: %s", got)
	default:
	}
}
