package main

import "net/http"

// ServeSwaggerDoc entrega o documento OpenAPI consumido pela UI do Swagger
// em /api-docs.
func ServeSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(swaggerDocument))
}

// swaggerDocument descreve o contrato HTTP da API de tarefas. Mantido à mão
// junto das rotas: qualquer mudança de contrato deve refletir aqui.
const swaggerDocument = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Todo List API",
    "version": "1.0.0",
    "description": "API de tarefas (Todo List) com autenticação delegada e Postgres hospedado."
  },
  "servers": [
    {"url": "http://localhost:8080", "description": "Servidor local de desenvolvimento"}
  ],
  "components": {
    "securitySchemes": {
      "bearerAuth": {
        "type": "http",
        "scheme": "bearer",
        "bearerFormat": "JWT",
        "description": "Token do provedor de identidade. Envie em Authorization: Bearer <token>."
      }
    },
    "schemas": {
      "Task": {
        "type": "object",
        "properties": {
          "id": {"type": "integer", "example": 1},
          "created_at": {"type": "string", "format": "date-time", "example": "2025-12-07T02:40:00.000Z"},
          "title": {"type": "string", "example": "Estudar para a prova"},
          "description": {"type": "string", "nullable": true, "example": "Revisar capítulo 3 do livro"},
          "due_date": {"type": "string", "format": "date", "nullable": true, "example": "2025-12-31"},
          "priority": {"type": "integer", "nullable": true, "example": 1, "description": "1 = mais alta, 4 = mais baixa"},
          "completed": {"type": "boolean", "example": false}
        },
        "required": ["id", "title", "completed"]
      },
      "TaskInput": {
        "type": "object",
        "properties": {
          "title": {"type": "string", "example": "Estudar Go"},
          "description": {"type": "string", "nullable": true, "example": "Assistir aulas da semana"},
          "dueDate": {"type": "string", "format": "date", "nullable": true, "example": "2025-12-31"},
          "priority": {"type": "integer", "nullable": true, "example": 2},
          "completed": {"type": "boolean", "nullable": true, "example": false}
        },
        "required": ["title"]
      },
      "TaskPatch": {
        "type": "object",
        "description": "Qualquer subconjunto dos campos de TaskInput. Campo ausente não muda; campo com null limpa o valor.",
        "properties": {
          "title": {"type": "string", "nullable": true},
          "description": {"type": "string", "nullable": true},
          "dueDate": {"type": "string", "format": "date", "nullable": true},
          "priority": {"type": "integer", "nullable": true},
          "completed": {"type": "boolean", "nullable": true}
        }
      },
      "ErrorResponse": {
        "type": "object",
        "properties": {
          "message": {"type": "string", "example": "Erro ao criar tarefa"},
          "details": {"type": "string", "nullable": true}
        }
      }
    }
  },
  "security": [{"bearerAuth": []}],
  "paths": {
    "/api/tasks": {
      "get": {
        "tags": ["Tasks"],
        "summary": "Listar tarefas",
        "description": "Retorna as tarefas do usuário autenticado, pendentes antes de concluídas, depois por vencimento, prioridade e id.",
        "responses": {
          "200": {
            "description": "Lista de tarefas retornada com sucesso.",
            "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Task"}}}}
          },
          "401": {"description": "Token ausente ou inválido.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "500": {"description": "Erro interno ao buscar tarefas.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      },
      "post": {
        "tags": ["Tasks"],
        "summary": "Criar nova tarefa",
        "description": "Cria uma tarefa do usuário autenticado. O backend recebe dueDate no corpo e grava como due_date.",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TaskInput"}}}},
        "responses": {
          "201": {"description": "Tarefa criada.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Task"}}}},
          "400": {"description": "Título ausente ou em branco.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "401": {"description": "Token ausente ou inválido.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "500": {"description": "Erro interno ao criar tarefa.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/api/tasks/{id}": {
      "put": {
        "tags": ["Tasks"],
        "summary": "Atualizar tarefa (parcial)",
        "description": "Atualiza apenas os campos presentes no corpo. Tarefa inexistente ou de outro usuário responde 404, sem distinguir os casos.",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TaskPatch"}}}},
        "responses": {
          "200": {"description": "Tarefa atualizada.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Task"}}}},
          "400": {"description": "ID inválido ou corpo malformado.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "401": {"description": "Token ausente ou inválido.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "404": {"description": "Tarefa não encontrada.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "500": {"description": "Erro interno ao atualizar tarefa.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      },
      "delete": {
        "tags": ["Tasks"],
        "summary": "Remover tarefa",
        "description": "Remoção idempotente: id inexistente recebe a mesma confirmação, nunca 404.",
        "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "integer"}}],
        "responses": {
          "200": {"description": "Confirmação de remoção.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "400": {"description": "ID inválido.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "401": {"description": "Token ausente ou inválido.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "500": {"description": "Erro interno ao deletar tarefa.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/api/me": {
      "get": {
        "tags": ["Auth"],
        "summary": "Usuário autenticado",
        "responses": {
          "200": {"description": "Usuário resolvido pelo token."},
          "401": {"description": "Token ausente ou inválido.", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/api/ping": {
      "get": {
        "tags": ["Health"],
        "summary": "Health check",
        "security": [],
        "responses": {
          "200": {"description": "Sempre 200 com {\"ok\": true}."}
        }
      }
    }
  }
}`
