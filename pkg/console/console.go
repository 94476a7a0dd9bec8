package console

import (
	"fmt"
	"io"
	"os"

	"github.com/diillson/aws-costbot-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
// O relatório vai para out; logs e spinner vão para errOut, para que a saída
// csv/flat possa ser redirecionada sem ruído.
type Console struct {
	out      io.Writer
	errOut   io.Writer
	quiet    bool
	spinners bool
}

// Option configura um Console.
type Option func(*Console)

// WithWriters replaces stdout and stderr.
func WithWriters(out, errOut io.Writer) Option {
	return func(c *Console) {
		c.out = out
		c.errOut = errOut
	}
}

// WithQuiet suppresses info and success logs and the spinner.
func WithQuiet(quiet bool) Option {
	return func(c *Console) { c.quiet = quiet }
}

// WithoutSpinner disables the animated status, e.g. when there is no terminal.
func WithoutSpinner() Option {
	return func(c *Console) { c.spinners = false }
}

// NewConsole cria um novo Console.
func NewConsole(opts ...Option) *Console {
	c := &Console{out: os.Stdout, errOut: os.Stderr, spinners: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Info.WithWriter(c.errOut).Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.WithWriter(c.errOut).Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.WithWriter(c.errOut).Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Success.WithWriter(c.errOut).Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	if c.quiet || !c.spinners {
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.WithWriter(c.errOut).WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}
