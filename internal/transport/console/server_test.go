package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var errBrokenPipe = errors.New("broken pipe")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenPipe
}

func newTestServer(in io.Reader, out io.Writer) *Server {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	useCase := usecase.NewGameUseCase(logger, service.NewBotService(logger))

	return New(logger, useCase, in, out)
}

func TestServer_Start(t *testing.T) {
	t.Run("Human wins", func(t *testing.T) {
		// Given: moves that complete the first column before the bot does anything useful
		out := &bytes.Buffer{}
		server := newTestServer(strings.NewReader("0\n3\n6\n"), out)

		// When: the game is played
		err := server.Start(context.Background())

		// Then: the win message and the final board are printed
		require.NoError(t, err)
		assert.Contains(t, out.String(), msgWon+"\n")
		assert.True(t, strings.HasSuffix(out.String(), ""+
			"+---+---+---+\n"+
			"| O | X | X |\n"+
			"+---+---+---+\n"+
			"| O | 4 | 5 |\n"+
			"+---+---+---+\n"+
			"| O | 7 | 8 |\n"+
			"+---+---+---+\n"))
	})

	t.Run("Human loses", func(t *testing.T) {
		out := &bytes.Buffer{}
		server := newTestServer(strings.NewReader("8\n7\n4\n"), out)

		err := server.Start(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), msgLost)
		assert.NotContains(t, out.String(), msgWon)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		out := &bytes.Buffer{}
		server := newTestServer(strings.NewReader("1\n3\n4\n6\n8\n"), out)

		err := server.Start(context.Background())

		require.NoError(t, err)
		assert.Contains(t, out.String(), msgDraw)
	})

	t.Run("Invalid input is rejected and re-prompted", func(t *testing.T) {
		// Given: garbage, out-of-range and occupied cells mixed into a winning game
		out := &bytes.Buffer{}
		input := "abc\n\n-1\n9\n0\n0\n1\n 3 \n6\n"
		server := newTestServer(strings.NewReader(input), out)

		// When: the game is played
		err := server.Start(context.Background())

		// Then: every bad line is reported and the game still ends normally
		require.NoError(t, err)
		assert.Equal(t, 6, strings.Count(out.String(), msgInvalidCell))
		assert.Equal(t, 9, strings.Count(out.String(), msgPrompt))
		assert.Contains(t, out.String(), msgWon)
	})

	t.Run("Closed input ends the game", func(t *testing.T) {
		out := &bytes.Buffer{}
		server := newTestServer(strings.NewReader("0\n"), out)

		err := server.Start(context.Background())

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Contains(t, out.String(), msgInputClosed)
	})

	t.Run("Read error ends the game", func(t *testing.T) {
		out := &bytes.Buffer{}
		server := newTestServer(failingReader{}, out)

		err := server.Start(context.Background())

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		require.ErrorIs(t, err, errBrokenPipe)
		assert.Contains(t, out.String(), errBrokenPipe.Error())
	})

	t.Run("Canceled context stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reader, writer := io.Pipe()
		defer writer.Close()

		err := newTestServer(reader, &bytes.Buffer{}).Start(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Board is shown before the first prompt", func(t *testing.T) {
		out := &bytes.Buffer{}
		server := newTestServer(strings.NewReader(""), out)

		_ = server.Start(context.Background())

		assert.True(t, strings.HasPrefix(out.String(), msgBoard+"\n+---+---+---+\n| 0 | 1 | 2 |\n"))
	})
}

func TestServer_Start_ReleasesReader(t *testing.T) {
	// Given: the goroutine count before any game
	baseline := runtime.NumGoroutine()

	// When: several games are won while unread lines remain in the input
	for i := 0; i < 20; i++ {
		server := newTestServer(strings.NewReader("0\n3\n6\n7\n8\n"), &bytes.Buffer{})
		require.NoError(t, server.Start(context.Background()))
	}

	// Then: every line reader has exited
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline
	}, time.Second, 10*time.Millisecond)
}

func TestParseCell(t *testing.T) {
	board := entity.NewDefaultBoard()
	require.NoError(t, board.Place(4, entity.CellX))

	t.Run("Accepts an empty cell", func(t *testing.T) {
		cell, err := parseCell(" 7\r", board)

		require.NoError(t, err)
		assert.Equal(t, 7, cell)
	})

	t.Run("Rejects non-numeric input", func(t *testing.T) {
		_, err := parseCell("seven", board)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Rejects out of range cells", func(t *testing.T) {
		_, errHigh := parseCell("9", board)
		_, errNegative := parseCell("-3", board)

		assert.ErrorIs(t, errHigh, apperror.ErrInvalidCell)
		assert.ErrorIs(t, errNegative, apperror.ErrInvalidCell)
	})

	t.Run("Rejects occupied cells", func(t *testing.T) {
		_, err := parseCell("4", board)

		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}
