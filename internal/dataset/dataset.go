package dataset

// Dataset is an ordered set of records with the header they were read under.
type Dataset struct {
	Columns []string
	Records [][]string

	index map[string]int
}

// New builds a Dataset from a header and its records. Records shorter than
// the header are padded with empty cells. When a column name repeats, the
// first occurrence wins.
func New(columns []string, records [][]string) *Dataset {
	d := &Dataset{
		Columns: columns,
		Records: make([][]string, len(records)),
		index:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		if _, ok := d.index[name]; !ok {
			d.index[name] = i
		}
	}
	for i, rec := range records {
		if len(rec) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, rec)
			rec = padded
		}
		d.Records[i] = rec
	}
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// HasColumn reports whether the header contains name exactly.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Value returns the cell of record i under column. Unknown columns yield "".
func (d *Dataset) Value(i int, column string) string {
	col, ok := d.index[column]
	if !ok {
		return ""
	}
	rec := d.Records[i]
	if col >= len(rec) {
		return ""
	}
	return rec[col]
}
