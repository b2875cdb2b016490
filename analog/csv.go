// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package analog

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCSV writes w as CSV: a header row with "time", the input names and
// "out", then one row per time point. Values are in seconds and volts.
//
func WriteCSV(out io.Writer, w *Waveform, names []string) error {
	if len(names) != len(w.In) {
		return errors.Errorf("%d names for %d inputs", len(names), len(w.In))
	}
	cw := csv.NewWriter(out)
	hdr := append(append([]string{"time"}, names...), "out")
	if err := cw.Write(hdr); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	row := make([]string, len(hdr))
	for k, t := range w.Time {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for i := range w.In {
			row[i+1] = strconv.FormatFloat(w.In[i][k], 'g', 6, 64)
		}
		row[len(row)-1] = strconv.FormatFloat(w.Out[k], 'g', 6, 64)
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
