package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// TextHandler implements the line-based interactive interface.
type TextHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Renderer     ContentRenderer
	Formatter    Formatter
	MaxInputSize int
	Prompt       string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the markdown renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerFormatter replaces the PlainFormatter.
func WithTextHandlerFormatter(f Formatter) TextHandlerOption {
	return func(h *TextHandler) {
		if f != nil {
			h.Formatter = f
		}
	}
}

// WithMaxInputSize bounds each typed line. Zero keeps DefaultMaxInputSize.
func WithMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		if n > 0 {
			h.MaxInputSize = n
		}
	}
}

// WithPrompt sets the prompt printed before each read. Empty disables it.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:       bufio.NewReader(r),
		Writer:       w,
		Formatter:    PlainFormatter{},
		MaxInputSize: DefaultMaxInputSize,
		Prompt:       "> ",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Read blocks until a line arrives or ctx is done.
func (h *TextHandler) Read(ctx context.Context) (Command, error) {
	h.initPump()

	select {
	case <-ctx.Done():
		return Command{}, ctx.Err()
	default:
		if h.Prompt != "" {
			fmt.Fprint(h.Writer, h.Prompt)
		}
	}

	select {
	case <-ctx.Done():
		return Command{}, ctx.Err()
	case res, ok := <-h.inputChan:
		if !ok {
			return Command{}, io.EOF
		}
		if res.err != nil {
			return Command{}, res.err
		}

		line := strings.TrimRight(res.text, "\r\n")
		clean, err := SanitizeInput(line, h.MaxInputSize)
		if err != nil {
			return Command{}, err
		}
		return ParseLine(clean)
	}
}

// Write prints the reply. Errors are printed instead of results.
func (h *TextHandler) Write(ctx context.Context, reply Reply) error {
	if reply.Message != "" {
		fmt.Fprintln(h.Writer, reply.Message)
	}
	if reply.Error != "" {
		_, err := fmt.Fprintf(h.Writer, "Error: %s\n", reply.Error)
		return err
	}

	var content string
	switch reply.Op {
	case OpHistory:
		if reply.Snapshot != nil {
			content = h.render(h.Formatter.History(reply.Snapshot.History))
		}
	case OpMethods:
		content = h.render(h.Formatter.Methods(reply.Methods))
	case OpSessions:
		content = h.render(h.Formatter.Sessions(reply.Sessions, reply.Session))
	case OpStats:
		content = h.render(h.Formatter.Stats(reply.Stats))
	default:
		if reply.Snapshot != nil {
			content = h.Formatter.Snapshot(*reply.Snapshot)
		}
	}
	if content == "" {
		return nil
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(content))
	return err
}

func (h *TextHandler) render(markdown string) string {
	if h.Renderer == nil {
		return markdown
	}
	rendered, err := h.Renderer(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
