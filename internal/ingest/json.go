// Package ingest reads raw listing snapshots from JSON and CSV sources.
package ingest

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/rentmap/internal/model"
)

// StreamJSON decodes a JSON array of listing records, sending each record to
// a channel. Expects input in the form [{...},{...}]. Unknown fields are
// ignored. Both channels are closed when processing completes.
func StreamJSON(ctx context.Context, r io.Reader) (<-chan model.RawListing, <-chan error) {
	outCh := make(chan model.RawListing, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(outCh)
		defer close(errCh)

		decoder := json.NewDecoder(r)

		// Expect opening bracket
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			errCh <- eris.Wrap(err, "ingest: read opening token")
			return
		}

		delim, ok := tok.(json.Delim)
		if !ok || delim != '[' {
			errCh <- eris.Errorf("ingest: expected '[', got %v", tok)
			return
		}

		for decoder.More() {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "ingest: context cancelled")
				return
			}

			var rec model.RawListing
			if err := decoder.Decode(&rec); err != nil {
				errCh <- eris.Wrap(err, "ingest: decode listing")
				return
			}

			select {
			case outCh <- rec:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "ingest: context cancelled")
				return
			}
		}

		// Consume closing bracket
		if _, err := decoder.Token(); err != nil && err != io.EOF {
			errCh <- eris.Wrap(err, "ingest: read closing token")
		}
	}()

	return outCh, errCh
}

// ReadJSON drains StreamJSON into a slice.
func ReadJSON(ctx context.Context, r io.Reader) ([]model.RawListing, error) {
	recCh, errCh := StreamJSON(ctx, r)

	var records []model.RawListing
	for rec := range recCh {
		records = append(records, rec)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return records, nil
}
