package console

import (
	"bufio"
	"currency-converter/domain"
	"currency-converter/exchange"
	"currency-converter/rates"
	"currency-converter/screen"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const help = `commands:
  source <amount>    type an amount into the source field
  target <amount>    type an amount into the target field
  clear source|target
  from <currency>    select the source currency
  to <currency>      select the target currency
  update             update rates
  rates              list the rate table
  show               print the screen
  help
  quit`

// Console a line oriented front-end for a screen.Screen
type Console struct {
	screen *screen.Screen
	table  *rates.Table
	logger log.Logger

	out     io.Writer
	pending []string // notifications not yet printed
}

// New constructs a Console on a fresh screen.Screen.
func New(service exchange.Service, table *rates.Table, logger log.Logger, from domain.Currency, to domain.Currency, out io.Writer) (*Console, error) {
	c := &Console{
		table:  table,
		logger: logger,
		out:    out,
	}
	s, err := screen.New(service, screen.NotifierFunc(c.notify), logger, from, to)
	if err != nil {
		return nil, fmt.Errorf("building screen: %w", err)
	}
	c.screen = s
	return c, nil
}

func (c *Console) notify(message string) {
	c.pending = append(c.pending, message)
}

// Run reads commands from in until quit or end of input.
func (c *Console) Run(in io.Reader) error {
	c.render()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		if quit := c.Exec(scanner.Text()); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// Exec runs a single command line and reports whether the console should stop.
func (c *Console) Exec(line string) bool {
	cmd, arg := split(line)
	switch cmd {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(c.out, help)
		return false
	case "source":
		c.screen.Source.SetText(arg)
	case "target":
		c.screen.Target.SetText(arg)
	case "clear":
		switch arg {
		case "source":
			c.screen.Source.SetText("")
		case "target":
			c.screen.Target.SetText("")
		default:
			c.fail(errors.New("clear what? source or target"))
			return false
		}
	case "from", "to":
		currency, err := domain.ParseCurrency(arg)
		if err != nil {
			c.fail(err)
			return false
		}
		spinner := c.screen.From
		if cmd == "to" {
			spinner = c.screen.To
		}
		if err := spinner.Select(currency); err != nil {
			c.fail(err)
			return false
		}
	case "update":
		c.screen.UpdateRates()
	case "rates":
		for _, e := range c.table.Pairs() {
			fmt.Fprintf(c.out, "%v %v\n", e.Pair, exchange.FormatRate(e.Rate))
		}
		return false
	case "show":
	default:
		c.fail(fmt.Errorf("unknown command: %v", cmd))
		return false
	}
	c.render()
	return false
}

func (c *Console) fail(err error) {
	level.Debug(c.logger).Log("msg", "command rejected", "err", err)
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func (c *Console) render() {
	s := c.screen
	fmt.Fprintf(c.out, "%v %v\n", s.From.Selected(), s.Source.Text())
	fmt.Fprintf(c.out, "%v %v\n", s.To.Selected(), s.Target.Text())
	fmt.Fprintln(c.out, s.Rate.Text())
	for _, m := range c.pending {
		fmt.Fprintf(c.out, "* %v\n", m)
	}
	c.pending = nil
}

func split(line string) (string, string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
}
