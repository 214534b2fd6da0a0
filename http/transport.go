package http

import (
	"currency-converter/domain"
	"currency-converter/exchange"
	"currency-converter/rates"
	"currency-converter/screen"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	Table   *rates.Table
	Logger  log.Logger
	router  http.ServeMux
}

func NewServer(s exchange.Service, table *rates.Table, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Table:   table,
		Logger:  logger,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/rates", s.rates())
	s.router.Handle("/api/rates/update", s.updateRates())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients.
	// Amount is the text typed into a field, it is not required to be a number.
	type request struct {
		FromCurrency string `json:"fromCurrency"`
		ToCurrency   string `json:"toCurrency"`
		Amount       string `json:"amount"`
		Direction    string `json:"direction"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Amount  string      `json:"amount"`
		Summary string      `json:"summary"`
		Rate    domain.Rate `json:"rate"`
		Outcome string      `json:"outcome"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid json")
			return
		}

		from, err := domain.ParseCurrency(request.FromCurrency)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}
		to, err := domain.ParseCurrency(request.ToCurrency)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}
		dir, err := domain.ParseDirection(request.Direction)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}

		result := s.Service.Convert(request.Amount, from, to, dir)

		s.encode(rw, response{
			Amount:  result.Amount,
			Summary: result.Summary,
			Rate:    result.Rate,
			Outcome: result.Outcome.String(),
		})
	}
}

// rates produces HTTP handler listing the rate table
func (s *Server) rates() http.HandlerFunc {

	type entry struct {
		From domain.Currency `json:"from"`
		To   domain.Currency `json:"to"`
		Rate domain.Rate     `json:"rate"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		pairs := s.Table.Pairs()
		entries := make([]entry, 0, len(pairs))
		for _, e := range pairs {
			entries = append(entries, entry{From: e.Pair.From, To: e.Pair.To, Rate: e.Rate})
		}
		s.encode(rw, entries)
	}
}

// updateRates acknowledges a refresh request; rates are static and stay as they are
func (s *Server) updateRates() http.HandlerFunc {

	type response struct {
		Message string `json:"message"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		level.Info(s.Logger).Log("msg", "rates update requested", "refreshed", false)
		s.encode(rw, response{Message: screen.RatesUpdated})
	}
}

func (s *Server) encode(rw http.ResponseWriter, v interface{}) {
	enc := json.NewEncoder(rw)
	if err := enc.Encode(v); err != nil {
		level.Error(s.Logger).Log("msg", "failed json encoding", "err", err)
	}
}

func (s *Server) fail(rw http.ResponseWriter, status int, message string) {
	type response struct {
		Error string `json:"error"`
	}
	rw.WriteHeader(status)
	s.encode(rw, response{Error: message})
}
