package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"ordersdesk.com/app/internal/orderlist"
	"ordersdesk.com/app/internal/ordersapi"
)

const help = `commands:
  <text>             search orders (sent after typing pauses)
  :status [value]    set or clear the status filter
  :fulfillment [v]   set or clear the fulfillment filter
  :payment [value]   set or clear the payment filter
  :filters           show active filters
  :submit            apply filters
  :clear             reload without search or filters
  :open <id>         open an order
  :new               new draft order
  :quit`

// Session drives one order list screen from line-based input.
type Session struct {
	ctrl *orderlist.Controller
	log  *slog.Logger
	out  io.Writer
}

// Output serialises writes from input handling and resource updates.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

func NewOutput(w io.Writer) *Output { return &Output{w: w} }

func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// RenderSnapshot draws the current list state.
func RenderSnapshot(w io.Writer, s ordersapi.Snapshot) {
	if s.Err != nil {
		fmt.Fprintf(w, "! refresh failed: %v\n", s.Err)
	}
	RenderPage(w, orderlist.Project(s.IsLoading, s.Orders))
}

// RenderPage writes a spinner line or the order table.
func RenderPage(w io.Writer, p orderlist.Page) {
	if p.Loading {
		fmt.Fprintln(w, "… loading")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(orderlist.Columns, "\t"))
	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t[%s]\t[%s]\t%d\n",
			r.Number, r.Date, r.Email, r.PaymentStatus, r.FulfillmentStatus, r.Items)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d orders\n", len(p.Rows))
}

// NewSession writes to out, which should be shared with the resource's
// change hook through an Output.
func NewSession(ctrl *orderlist.Controller, out io.Writer, log *slog.Logger) *Session {
	return &Session{ctrl: ctrl, out: out, log: log}
}

// Run reads commands until EOF, :quit or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := s.Handle(ctx, sc.Text()); quit {
			return nil
		}
	}
	return sc.Err()
}

// Handle executes one input line and reports whether the session should end.
func (s *Session) Handle(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, ":") {
		s.ctrl.SetQuery(line)
		return false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "status":
		s.ctrl.SetStatusFilter(orderlist.FilterState{Filter: arg})
	case "fulfillment":
		s.ctrl.SetFulfillmentFilter(orderlist.FilterState{Filter: arg})
	case "payment":
		s.ctrl.SetPaymentFilter(orderlist.FilterState{Filter: arg})
	case "filters":
		s.printFilters()
	case "submit":
		s.report(ctx, "submit", s.ctrl.Submit(ctx))
	case "clear":
		s.report(ctx, "clear", s.ctrl.Clear(ctx))
	case "open":
		if arg == "" {
			s.printf("usage: :open <id>\n")
			break
		}
		s.ctrl.OpenOrder(arg)
	case "new":
		s.ctrl.NewDraftOrder()
	case "quit", "q":
		return true
	case "help", "h", "?":
		s.printf("%s\n", help)
	default:
		s.printf("unknown command %s (try :help)\n", strconv.Quote(cmd))
	}
	return false
}

func (s *Session) printFilters() {
	f := s.ctrl.Filters()
	for _, facet := range orderlist.Facets {
		v := f.Get(facet).Filter
		if v == "" {
			v = "-"
		}
		s.printf("%-12s %s\n", facet, v)
	}
	s.printf("query        %q\nfilter string %q\n", s.ctrl.Query(), f.QueryString())
}

// report logs refresh failures; the resource already rendered them.
func (s *Session) report(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}
	s.log.LogAttrs(ctx, slog.LevelDebug, "console_refresh_failed",
		slog.String("op", op),
		slog.Any("err", err),
	)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
