package cliargs

// WriteTable prints t one flag per line in occurrence order. Flags given
// without a value print as the bare name. At verbosity 2 and up each line
// also shows every direct value the flag was given.
func WriteTable(w Writer, t *Table) {
	for _, e := range t.Entries() {
		w.Printf("%s\n", e)
		values := t.GetArgs(e.Name)
		if len(values) < 2 {
			continue
		}
		w.V2().Printf("  occurrences: %q\n", values)
	}
}
