package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/bank"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/codec"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/mail"
)

// maxBodySize caps request bodies. Records are 80 bytes; apply requests
// carry one base64 record and a word set.
const maxBodySize = 16 << 10

// Services are the collaborators the handlers call into. Bank may be nil,
// in which case the bank routes answer 503.
type Services struct {
	Engine   *mail.Engine
	Catalogs *catalog.Catalogs
	Bank     IRecordBank
}

// Server holds the API server state
type Server struct {
	services Services
	config   ServerConfig
	metrics  *Metrics
	log      zerolog.Logger
}

// NewServer creates a new API server
func NewServer(services Services, config ServerConfig, metrics *Metrics, log zerolog.Logger) *Server {
	return &Server{
		services: services,
		config:   config,
		metrics:  metrics,
		log:      log,
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter %q", name, v)
	}
	return b, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s parameter %q", name, v)
	}
	return n, nil
}

// readRecord parses the request body as a record. The encrypted query
// parameter, true by default, tells whether the body is at rest.
func readRecord(w http.ResponseWriter, r *http.Request) (*codec.Record, error) {
	encrypted, err := queryBool(r, "encrypted", true)
	if err != nil {
		return nil, err
	}
	body, err := readBody(w, r)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return codec.Parse(body, encrypted)
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode godoc
//
//	@Summary		Decode a record
//	@Description	Decode an 80-byte record into its fields
//	@Tags			records
//	@Accept			octet-stream
//	@Produce		json
//	@Param			encrypted	query		bool	false	"Whether the body is at rest (default true)"
//	@Param			body		body		[]byte	true	"Record bytes"
//	@Success		200			{object}	RecordView
//	@Failure		400			{object}	APIResponse
//	@Router			/records/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	rec, err := readRecord(w, r)
	if err != nil {
		s.metrics.RecordDecode(false, false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordDecode(true, rec.BadEgg)
	sendSuccess(w, newRecordView(rec, s.services.Catalogs))
}

// handleSearch godoc
//
//	@Summary		Search mail word sets
//	@Description	List the key preserving word sets for a record, cheapest first. With order, only sets reaching that substructure order.
//	@Tags			mail
//	@Accept			octet-stream
//	@Produce		json
//	@Param			order	query		string	false	"Target substructure order, such as GAME"
//	@Param			limit	query		int		false	"Maximum number of sets (0 for all)"
//	@Param			body	body		[]byte	true	"Record bytes"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/mail/search [post]
//	@Security		ApiKeyAuth
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	mode := "search"

	fail := func(msg string, code int) {
		s.metrics.RecordSearch(mode, false, 0, time.Since(start))
		sendError(w, msg, code)
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		fail(err.Error(), http.StatusBadRequest)
		return
	}

	var target codec.Order
	if v := r.URL.Query().Get("order"); v != "" {
		mode = "order"
		if target, err = codec.ParseOrder(v); err != nil {
			fail(err.Error(), http.StatusBadRequest)
			return
		}
	}

	body, err := readBody(w, r)
	if err != nil {
		fail("Failed to read request body", http.StatusBadRequest)
		return
	}
	id, err := mail.IdentityFromBytes(body)
	if err != nil {
		fail(err.Error(), http.StatusBadRequest)
		return
	}

	seq := s.services.Engine.Search(id)
	if !target.IsZero() {
		seq = s.services.Engine.ByOrder(id, target)
	}
	sets := mail.Cheapest(seq, limit)
	if sets == nil {
		sets = []mail.WordSet{}
	}

	s.metrics.RecordSearch(mode, true, len(sets), time.Since(start))
	s.log.Debug().Str("mode", mode).Int("word_sets", len(sets)).Msg("mail search")
	sendSuccess(w, SearchResponse{Order: id.Order().String(), Count: len(sets), WordSets: sets})
}

// handleSurvey godoc
//
//	@Summary		Survey reachable orders
//	@Description	For each substructure order a record can reach, the cheapest word set reaching it
//	@Tags			mail
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Record bytes"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	APIResponse
//	@Router			/mail/survey [post]
//	@Security		ApiKeyAuth
func (s *Server) handleSurvey(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := readBody(w, r)
	if err != nil {
		s.metrics.RecordSearch("survey", false, 0, time.Since(start))
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	id, err := mail.IdentityFromBytes(body)
	if err != nil {
		s.metrics.RecordSearch("survey", false, 0, time.Since(start))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sets := slices.Collect(s.services.Engine.Survey(id))
	if sets == nil {
		sets = []mail.WordSet{}
	}

	s.metrics.RecordSearch("survey", true, len(sets), time.Since(start))
	sendSuccess(w, SearchResponse{Order: id.Order().String(), Count: len(sets), WordSets: sets})
}

// handleApply godoc
//
//	@Summary		Apply a word set
//	@Description	Write a word set over a record's identity and decode the result
//	@Tags			mail
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ApplyRequest	true	"Record and word set"
//	@Success		200		{object}	RecordView
//	@Failure		400		{object}	APIResponse
//	@Router			/mail/apply [post]
//	@Security		ApiKeyAuth
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	ws, err := s.services.Engine.DecodeWordSet(req.Words)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := mail.ApplyBytes(req.Record, req.Encrypted, ws)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordDecode(true, rec.BadEgg)
	sendSuccess(w, newRecordView(rec, s.services.Catalogs))
}

func (s *Server) bankView(e bank.Entry) BankEntryView {
	return BankEntryView{
		ID:        e.ID.String(),
		Label:     e.Label,
		Deposited: e.Deposited(),
		Record:    newRecordView(e.Record, s.services.Catalogs),
	}
}

func (s *Server) requireBank(w http.ResponseWriter) bool {
	if s.services.Bank == nil {
		sendError(w, "Record bank is not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) bankID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid record id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func bankStatus(err error) int {
	if errors.Is(err, bank.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// handleBankPut godoc
//
//	@Summary		Deposit a record
//	@Description	Store a record in the bank
//	@Tags			bank
//	@Accept			octet-stream
//	@Produce		json
//	@Param			encrypted	query		bool	false	"Whether the body is at rest (default true)"
//	@Param			label		query		string	false	"Free text label"
//	@Param			body		body		[]byte	true	"Record bytes"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	APIResponse
//	@Router			/bank [post]
//	@Security		ApiKeyAuth
func (s *Server) handleBankPut(w http.ResponseWriter, r *http.Request) {
	if !s.requireBank(w) {
		return
	}
	start := time.Now()

	rec, err := readRecord(w, r)
	if err != nil {
		s.metrics.RecordBankOperation("put", false, time.Since(start))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.services.Bank.Put(rec, r.URL.Query().Get("label"))
	if err != nil {
		s.metrics.RecordBankOperation("put", false, time.Since(start))
		sendError(w, fmt.Sprintf("Failed to store record: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordBankOperation("put", true, time.Since(start))
	sendSuccess(w, map[string]string{"id": id.String()})
}

// handleBankGet godoc
//
//	@Summary		Get a deposited record
//	@Tags			bank
//	@Produce		json
//	@Param			id	path		string	true	"Record id"
//	@Success		200	{object}	BankEntryView
//	@Failure		404	{object}	APIResponse
//	@Router			/bank/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleBankGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireBank(w) {
		return
	}
	id, ok := s.bankID(w, r)
	if !ok {
		return
	}
	start := time.Now()

	e, err := s.services.Bank.Get(id)
	if err != nil {
		s.metrics.RecordBankOperation("get", false, time.Since(start))
		sendError(w, err.Error(), bankStatus(err))
		return
	}

	s.metrics.RecordBankOperation("get", true, time.Since(start))
	sendSuccess(w, s.bankView(e))
}

// handleBankList godoc
//
//	@Summary		List deposited records
//	@Tags			bank
//	@Produce		json
//	@Success		200	{array}		BankEntryView
//	@Router			/bank [get]
//	@Security		ApiKeyAuth
func (s *Server) handleBankList(w http.ResponseWriter, r *http.Request) {
	if !s.requireBank(w) {
		return
	}
	start := time.Now()

	entries, err := s.services.Bank.List()
	if err != nil {
		s.metrics.RecordBankOperation("list", false, time.Since(start))
		sendError(w, fmt.Sprintf("Failed to list records: %v", err), http.StatusInternalServerError)
		return
	}

	views := make([]BankEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, s.bankView(e))
	}

	s.metrics.RecordBankOperation("list", true, time.Since(start))
	s.metrics.UpdateBankStats(len(entries))
	sendSuccess(w, views)
}

// handleBankDelete godoc
//
//	@Summary		Delete a deposited record
//	@Tags			bank
//	@Produce		json
//	@Param			id	path		string	true	"Record id"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	APIResponse
//	@Router			/bank/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleBankDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireBank(w) {
		return
	}
	id, ok := s.bankID(w, r)
	if !ok {
		return
	}
	start := time.Now()

	if err := s.services.Bank.Delete(id); err != nil {
		s.metrics.RecordBankOperation("delete", false, time.Since(start))
		sendError(w, err.Error(), bankStatus(err))
		return
	}

	s.metrics.RecordBankOperation("delete", true, time.Since(start))
	sendSuccess(w, map[string]string{"message": "Record deleted successfully"})
}
