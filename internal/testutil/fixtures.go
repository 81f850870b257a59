// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// Petstore is a small OAS 2.0 document without reference cycles.
const Petstore = `{
  "swagger": "2.0",
  "info": {"title": "Petstore", "version": "1.0.0"},
  "host": "api.example.com",
  "basePath": "/v1",
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "summary": "List pets",
        "parameters": [{"$ref": "#/parameters/limit"}],
        "responses": {
          "200": {"description": "ok", "schema": {"type": "array", "items": {"$ref": "#/definitions/Pet"}}},
          "default": {"$ref": "#/responses/Error"}
        }
      }
    },
    "/pets/{petId}": {
      "get": {
        "operationId": "showPet",
        "summary": "Show a pet",
        "parameters": [{"name": "petId", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/Pet"}}}
      }
    }
  },
  "parameters": {
    "limit": {"name": "limit", "in": "query", "type": "integer"}
  },
  "definitions": {
    "Pet": {
      "type": "object",
      "required": ["id", "name"],
      "properties": {
        "id": {"type": "integer"},
        "name": {"type": "string"},
        "tag": {"$ref": "#/definitions/Tag"}
      }
    },
    "Tag": {"type": "object", "properties": {"name": {"type": "string"}}}
  },
  "responses": {
    "Error": {"description": "unexpected error"}
  }
}`

// Orders is an OAS 2.0 document with two reference cycles:
// Order.customer -> Customer.orders -> Order and Item.order -> Order.items -> Item.
const Orders = `{
  "swagger": "2.0",
  "info": {"title": "Orders", "version": "1.0.0"},
  "paths": {
    "/orders": {
      "get": {
        "operationId": "listOrders",
        "summary": "List orders",
        "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/Order"}}}
      }
    }
  },
  "definitions": {
    "Order": {
      "type": "object",
      "required": ["id", "customer"],
      "properties": {
        "id": {"type": "string"},
        "customer": {"$ref": "#/definitions/Customer"},
        "items": {"type": "array", "items": {"$ref": "#/definitions/Item"}}
      }
    },
    "Customer": {
      "type": "object",
      "required": ["orders"],
      "properties": {
        "name": {"type": "string"},
        "orders": {"type": "array", "items": {"$ref": "#/definitions/Order"}}
      }
    },
    "Item": {
      "type": "object",
      "properties": {
        "sku": {"type": "string"},
        "order": {"$ref": "#/definitions/Order"}
      }
    }
  }
}`

// WriteSource writes content to name inside a fresh temporary directory.
// Returns the path to the file.
func WriteSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}
	return path
}

// WriteTempYAML marshals v to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to YAML: %v", err)
	}
	return WriteSource(t, "test.yaml", string(data))
}

// WriteTempJSON marshals v to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal value to JSON: %v", err)
	}
	return WriteSource(t, "test.json", string(data))
}
