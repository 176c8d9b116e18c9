package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "list_skus",
				"description": "List the store's SKUs with prices, margins, lead times, review intervals and current stock. Guidance: start here, then check 'get_demand_stats' before making a forecast.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "get_inventory_status",
				"description": "Assess each SKU's stock position: days of cover against its purchase lead time, with an urgency flag. A SKU whose cover is below its lead time cannot be saved by ordering today.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "get_demand_stats",
				"description": "Rolling 7-day demand statistics per SKU: mean, population standard deviation, coefficient of variation, last-3-day mean and a volatility label. These feed the safety stock formula.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name": "evaluate_replenishment",
				"description": "Compute the full replenishment plan for one SKU: z-score, safety stock (z x sigma x sqrt(lead time)), reorder point, target stock and a suggested order quantity. " +
					"The decision is advisory; submit_orders accepts any non-negative quantity including zero. " +
					"Omitted inputs fall back to documented defaults: forecast_mean -> historical mean, service_level -> 0.95, order_interval_days -> the SKU's own interval. Supplied values are validated strictly and rejected by field, never clamped.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"sku":                 map[string]interface{}{"type": "string", "description": "SKU identifier (e.g. WATER)"},
						"forecast_mean":       map[string]interface{}{"type": "number", "description": "Forecasted mean daily demand, >= 0"},
						"service_level":       map[string]interface{}{"type": "number", "description": "Target in-stock probability, strictly between 0 and 1"},
						"order_interval_days": map[string]interface{}{"type": "integer", "description": "Days between review cycles, >= 1"},
					},
					"required": []string{"sku"},
				},
			},
			map[string]interface{}{
				"name":        "assess_forecast",
				"description": "Score a demand forecast for one SKU on a 0-100 scale against the true base demand, and compare it with the naive historical-mean forecast.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"sku":           map[string]interface{}{"type": "string", "description": "SKU identifier"},
						"forecast_mean": map[string]interface{}{"type": "number", "description": "The forecast to assess"},
					},
					"required": []string{"sku", "forecast_mean"},
				},
			},
			map[string]interface{}{
				"name": "submit_orders",
				"description": "Submit a batch of replenishment orders, mapping SKU to a non-negative whole quantity (zero means no order). " +
					"The batch is atomic: if its total cost exceeds available cash, or any SKU already has an order in transit, nothing is committed and cash is untouched. Cash is debited now; goods arrive after each SKU's lead time.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"orders": map[string]interface{}{
							"type":                 "object",
							"description":          "SKU -> quantity (e.g. {\"WATER\": 103, \"MILK\": 0})",
							"additionalProperties": map[string]interface{}{"type": "integer"},
						},
					},
					"required": []string{"orders"},
				},
			},
			map[string]interface{}{
				"name": "advance_day",
				"description": "Run exactly one simulated trading day: stochastic demand per SKU, fulfillment against on-hand stock, stockout bookkeeping, order pipeline countdown and the day-end report. " +
					"Not idempotent. Calling it twice advances two days and consumes randomness twice.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "get_session_summary",
				"description": "Current session standing: day, cash, cumulative revenue/profit, score with grade, and all in-transit orders.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "list_quiz_questions",
				"description": "List the knowledge-check questions. Each first correct answer is worth a flat bonus.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "answer_quiz",
				"description": "Answer a knowledge-check question by choice index. The bonus is paid once per question; wrong answers may be retried.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"question_id": map[string]interface{}{"type": "string", "description": "Question identifier from list_quiz_questions"},
						"choice":      map[string]interface{}{"type": "integer", "description": "Zero-based index of the chosen answer"},
					},
					"required": []string{"question_id", "choice"},
				},
			},
			map[string]interface{}{
				"name":        "reset_session",
				"description": "Discard all session state and reseed stock, histories, cash and score from the catalog.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
	}
}
