package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"stocksim/internal/config"
	"stocksim/internal/session"
	"stocksim/internal/sim"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server owns exactly one player session and exposes the replenishment
// engine as tools over Stdio. Requests are handled strictly one at a
// time, which is the session's concurrency contract.
type Server struct {
	cfg     *config.AppConfig
	session *session.Session
	engine  *sim.Engine
}

// NewServer creates a server with a freshly seeded session.
func NewServer(cfg *config.AppConfig) *Server {
	engine := sim.NewEngine()
	if cfg.RandomSeed != 0 {
		engine = sim.NewSeededEngine(cfg.RandomSeed)
	}
	return &Server{
		cfg:     cfg,
		session: session.New(cfg.StartingCash),
		engine:  engine,
	}
}

// Serve starts the JSON-RPC loop over Stdio. Logs go to stderr and the
// log file; stdout carries nothing but responses.
func (s *Server) Serve() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "stocksim",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(os.Stdout, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error

	switch call.Name {
	case "list_skus":
		data, err = s.handleListSKUs()
	case "get_inventory_status":
		data, err = s.handleInventoryStatus()
	case "get_demand_stats":
		data, err = s.handleDemandStats()
	case "evaluate_replenishment":
		data, err = s.handleEvaluateReplenishment(call.Arguments)
	case "assess_forecast":
		data, err = s.handleAssessForecast(call.Arguments)
	case "submit_orders":
		data, err = s.handleSubmitOrders(call.Arguments)
	case "advance_day":
		data, err = s.handleAdvanceDay()
	case "get_session_summary":
		data, err = s.handleSessionSummary()
	case "list_quiz_questions":
		data, err = s.handleListQuiz()
	case "answer_quiz":
		data, err = s.handleAnswerQuiz(call.Arguments)
	case "reset_session":
		data, err = s.handleResetSession()
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
