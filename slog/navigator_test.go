package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/seoscan/seoscan"
	"github.com/seoscan/seoscan/mock"
	seoslog "github.com/seoscan/seoscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNavigator_Find(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs a successful search", func(t *testing.T) {
		t.Parallel()

		el := &seoscan.Element{Name: "title", Text: "Hi"}
		searcher := &mock.ElementSearcher{
			FindFn: func(q seoscan.Query) (*seoscan.Element, error) {
				return el, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		nav := seoslog.NewLoggingNavigator(searcher, logger)

		got, err := nav.Find(seoscan.Query{Name: "title"})

		require.NoError(t, err)
		assert.Same(t, el, got)
		assert.Contains(t, buf.String(), "element search")
		assert.Contains(t, buf.String(), "query=title")
		assert.Contains(t, buf.String(), "found=true")
	})

	t.Run("logs the error of a failed search", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.ElementSearcher{
			FindFn: func(q seoscan.Query) (*seoscan.Element, error) {
				return nil, seoscan.NotFound(q)
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		nav := seoslog.NewLoggingNavigator(searcher, logger)

		_, err := nav.Find(seoscan.Query{Name: "article"})

		require.Error(t, err)
		assert.Equal(t, seoscan.ENOTFOUND, seoscan.ErrorCode(err))
		assert.Contains(t, buf.String(), "found=false")
	})
}
