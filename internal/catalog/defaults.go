package catalog

import "github.com/harrison/blueprint/internal/models"

// defaultRules encode the built-in architectural knowledge base. Every fact
// is boolean; rules chain (e.g. offline -> needs_sync -> needs_storage) so
// the fixed point is reached over several passes.
func defaultRules() []models.Rule {
	return []models.Rule{
		{
			ID:         "offline_requires_local_storage",
			Conditions: []models.Condition{{Fact: "offline", Value: true}},
			Conclusions: []models.Conclusion{
				{Fact: "local_first_storage", Value: true},
				{Fact: "needs_sync", Value: true},
			},
		},
		{
			ID: "offline_multi_user_needs_crdt",
			Conditions: []models.Condition{
				{Fact: "offline", Value: true},
				{Fact: "multi_user", Value: true},
			},
			Conclusions: []models.Conclusion{
				{Fact: "crdt_sync", Value: true},
				{Fact: "needs_conflict_ui", Value: true},
			},
		},
		{
			ID: "offline_single_user_simple_sync",
			Conditions: []models.Condition{
				{Fact: "offline", Value: true},
				{Fact: "multi_user", Value: false},
			},
			Conclusions: []models.Conclusion{{Fact: "last_write_wins", Value: true}},
		},
		{
			ID:         "multi_user_needs_auth",
			Conditions: []models.Condition{{Fact: "multi_user", Value: true}},
			Conclusions: []models.Conclusion{
				{Fact: "needs_auth", Value: true},
				{Fact: "needs_backend", Value: true},
			},
		},
		{
			ID: "multi_user_needs_permissions",
			Conditions: []models.Condition{
				{Fact: "multi_user", Value: true},
				{Fact: "shared_content", Value: true},
			},
			Conclusions: []models.Conclusion{
				{Fact: "needs_permissions", Value: true},
				{Fact: "needs_roles", Value: true},
			},
		},
		{
			ID:         "realtime_needs_websockets",
			Conditions: []models.Condition{{Fact: "realtime", Value: true}},
			Conclusions: []models.Conclusion{
				{Fact: "needs_websocket", Value: true},
				{Fact: "needs_backend", Value: true},
			},
		},
		{
			ID: "realtime_with_offline_needs_queue",
			Conditions: []models.Condition{
				{Fact: "realtime", Value: true},
				{Fact: "offline", Value: true},
			},
			Conclusions: []models.Conclusion{
				{Fact: "needs_message_queue", Value: true},
				{Fact: "needs_retry_logic", Value: true},
			},
		},
		{
			ID:         "sensitive_data_needs_encryption",
			Conditions: []models.Condition{{Fact: "sensitive_data", Value: true}},
			Conclusions: []models.Conclusion{
				{Fact: "needs_encryption", Value: true},
				{Fact: "needs_audit_log", Value: true},
			},
		},
		{
			ID:         "payment_needs_compliance",
			Conditions: []models.Condition{{Fact: "handles_payment", Value: true}},
			Conclusions: []models.Conclusion{
				{Fact: "needs_pci_compliance", Value: true},
				{Fact: "use_payment_provider", Value: true},
			},
		},
		{
			ID:          "sync_needs_storage",
			Conditions:  []models.Condition{{Fact: "needs_sync", Value: true}},
			Conclusions: []models.Conclusion{{Fact: "needs_storage", Value: true}},
		},
		{
			ID:          "auth_needs_storage",
			Conditions:  []models.Condition{{Fact: "needs_auth", Value: true}},
			Conclusions: []models.Conclusion{{Fact: "needs_storage", Value: true}},
		},
		{
			ID:          "backend_needs_api",
			Conditions:  []models.Condition{{Fact: "needs_backend", Value: true}},
			Conclusions: []models.Conclusion{{Fact: "needs_api", Value: true}},
		},
	}
}

// defaultBlocks is the built-in block catalog. Catalog order is significant:
// the auto-solver picks the first provider in this order when several blocks
// could satisfy a missing capability.
func defaultBlocks() []models.Block {
	return []models.Block{
		{
			ID:               "storage_sqlite",
			Provides:         []string{"storage", "persistence", "structured_queries"},
			IncompatibleWith: []string{"storage_json", "storage_server"},
		},
		{
			ID:               "storage_json",
			Provides:         []string{"storage", "persistence"},
			IncompatibleWith: []string{"storage_sqlite", "storage_server"},
		},
		{
			ID:               "storage_server",
			Requires:         []string{"backend"},
			Provides:         []string{"storage", "persistence", "multi_device_access"},
			IncompatibleWith: []string{"storage_sqlite", "storage_json"},
		},
		{
			ID:               "backend_flask",
			Provides:         []string{"backend", "http_server"},
			IncompatibleWith: []string{"backend_fastapi"},
		},
		{
			ID:               "backend_fastapi",
			Provides:         []string{"backend", "http_server", "async_support"},
			IncompatibleWith: []string{"backend_flask"},
		},
		{
			ID:               "auth_basic",
			Requires:         []string{"backend"},
			Provides:         []string{"auth", "user_identity"},
			IncompatibleWith: []string{"auth_oauth"},
		},
		{
			ID:               "auth_oauth",
			Requires:         []string{"backend"},
			Provides:         []string{"auth", "user_identity", "third_party_login"},
			IncompatibleWith: []string{"auth_basic"},
		},
		{
			ID:       "crud_routes",
			Requires: []string{"backend", "storage"},
			Provides: []string{"api", "rest_endpoints"},
		},
		{
			ID:       "websocket",
			Requires: []string{"backend"},
			Provides: []string{"realtime_transport", "push_notifications"},
		},
		{
			ID:       "crdt_sync",
			Requires: []string{"storage", "backend"},
			Provides: []string{"sync", "conflict_resolution", "realtime_updates"},
		},
	}
}

// defaultFactBlocks maps derived facts to their block selections.
func defaultFactBlocks() []FactBlock {
	return []FactBlock{
		{Fact: "needs_storage", Block: "storage_sqlite"},
		{Fact: "needs_backend", Block: "backend_flask"},
		{Fact: "needs_auth", Block: "auth_basic"},
		{Fact: "needs_api", Block: "crud_routes"},
		{Fact: "needs_websocket", Block: "websocket"},
		{Fact: "crdt_sync", Block: "crdt_sync"},
	}
}

// Default returns the built-in catalog. The defaults are validated like any
// other configuration; a failure here is a programming error.
func Default() *Catalog {
	c, err := New(defaultRules(), defaultBlocks(), defaultFactBlocks())
	if err != nil {
		panic(err)
	}
	return c
}
