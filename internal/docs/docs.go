// Package docs holds the Swagger 2.0 document served at /swagger. It is
// maintained by hand alongside the handler annotations; the router tests
// check that every mounted /api route is documented.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/transactions": {
			"get": {
				"description": "List transactions newest first. Filters by type or by an inclusive date range; without filters returns the newest up to limit.",
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "List transactions",
				"parameters": [
					{
						"type": "integer",
						"description": "Maximum number of transactions (1-100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "expense or income",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Range start (YYYY-MM-DD), requires end",
						"name": "start",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Range end (YYYY-MM-DD), requires start",
						"name": "end",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Transactions",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/handlers.TransactionResponse"
								}
							}
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"description": "Record an income or expense from a form submission. Expenses are stored negative.",
				"consumes": [
					"application/x-www-form-urlencoded"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Create a transaction",
				"parameters": [
					{
						"type": "string",
						"description": "Positive amount, e.g. 12.50",
						"name": "amount",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "One of the fixed categories (case-insensitive)",
						"name": "category",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Free text",
						"name": "description",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "expense or income",
						"name": "type",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Calendar date (YYYY-MM-DD)",
						"name": "date",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Transaction saved",
						"schema": {
							"$ref": "#/definitions/handlers.CreateTransactionResponse"
						}
					},
					"400": {
						"description": "Validation failed or invalid reference",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"409": {
						"description": "Transaction already exists",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/transactions/search": {
			"get": {
				"description": "Case-insensitive search over description and category with category/type filters. Stats and count cover every match, not just the returned window.",
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Search transactions",
				"parameters": [
					{
						"type": "string",
						"description": "Substring matched against description or category",
						"name": "searchTerm",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Category filter, All disables it",
						"name": "category",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Type filter, All disables it",
						"name": "type",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Window size (default 8, max 100)",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Search results",
						"schema": {
							"$ref": "#/definitions/handlers.SearchResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/transactions/stats": {
			"get": {
				"description": "Total expenses, income, savings and count, optionally for one month. month and year must be given together.",
				"produces": [
					"application/json"
				],
				"tags": [
					"transactions"
				],
				"summary": "Summary statistics",
				"parameters": [
					{
						"type": "integer",
						"description": "Month (1-12)",
						"name": "month",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Year",
						"name": "year",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Summary stats",
						"schema": {
							"$ref": "#/definitions/services.SummaryStats"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/analytics/categories": {
			"get": {
				"description": "Expense totals per category for one month, largest first. Defaults to the current month.",
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Spending by category",
				"parameters": [
					{
						"type": "integer",
						"description": "Month (1-12)",
						"name": "month",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Year",
						"name": "year",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Category totals",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/services.CategorySpending"
								}
							}
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/analytics/weekly": {
			"get": {
				"description": "Expense totals per day within an inclusive range, oldest first. Defaults to the seven days ending today.",
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Weekly spending",
				"parameters": [
					{
						"type": "string",
						"description": "Range start (YYYY-MM-DD)",
						"name": "start",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Range end (YYYY-MM-DD)",
						"name": "end",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Daily totals",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/services.DailySpending"
								}
							}
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/analytics/trends": {
			"get": {
				"description": "Income, expenses and savings per month over the configured window, including empty months.",
				"produces": [
					"application/json"
				],
				"tags": [
					"analytics"
				],
				"summary": "Monthly trends",
				"parameters": [
					{
						"type": "integer",
						"description": "Number of months (default from configuration, max 120)",
						"name": "months",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Monthly series",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/services.MonthlyTrend"
								}
							}
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/dashboard": {
			"get": {
				"description": "Recent transactions, the month's category split and summary, the week's daily spending, monthly trends and savings goal progress.",
				"produces": [
					"application/json"
				],
				"tags": [
					"dashboard"
				],
				"summary": "Dashboard",
				"parameters": [
					{
						"type": "string",
						"description": "Reference date (YYYY-MM-DD), defaults to today",
						"name": "date",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Dashboard",
						"schema": {
							"$ref": "#/definitions/handlers.DashboardResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/categories": {
			"get": {
				"description": "The fixed transaction categories with their chart colors, and the transaction types.",
				"produces": [
					"application/json"
				],
				"tags": [
					"categories"
				],
				"summary": "List categories",
				"responses": {
					"200": {
						"description": "Enumerations",
						"schema": {
							"$ref": "#/definitions/handlers.CategoriesResponse"
						}
					}
				}
			}
		},
		"/ai-advisor": {
			"post": {
				"description": "Forward a message under a fixed financial-advisor instruction. Resend the returned conversation_id to continue the conversation.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"advisor"
				],
				"summary": "Ask the AI advisor",
				"parameters": [
					{
						"description": "Message and optional conversation",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.AdvisorRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Advisor reply",
						"schema": {
							"$ref": "#/definitions/handlers.AdvisorResponse"
						}
					},
					"400": {
						"description": "Message is required",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Server error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"503": {
						"description": "Advisor not configured",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "ok",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "database unreachable",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"apperrors.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string",
					"example": "amount"
				},
				"message": {
					"type": "string",
					"example": "Amount is required"
				}
			}
		},
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string",
					"example": "VALIDATION_FAILED"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/apperrors.FieldError"
					}
				},
				"error": {
					"type": "string",
					"example": "Validation failed"
				},
				"message": {
					"type": "string",
					"example": "Please check your input and try again."
				}
			}
		},
		"handlers.TransactionResponse": {
			"type": "object",
			"properties": {
				"absAmount": {
					"type": "string",
					"example": "12.50"
				},
				"amount": {
					"type": "string",
					"example": "-12.50"
				},
				"category": {
					"allOf": [
						{
							"$ref": "#/definitions/models.Category"
						}
					],
					"example": "dining"
				},
				"date": {
					"type": "string",
					"example": "2024-03-05"
				},
				"description": {
					"type": "string",
					"example": "Lunch"
				},
				"displayAmount": {
					"type": "string",
					"example": "-$12.50"
				},
				"id": {
					"type": "integer",
					"example": 42
				},
				"sign": {
					"type": "string",
					"example": "-"
				},
				"type": {
					"allOf": [
						{
							"$ref": "#/definitions/models.TransactionType"
						}
					],
					"example": "expense"
				}
			}
		},
		"handlers.TransactionSummary": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number",
					"example": 12.5
				},
				"category": {
					"allOf": [
						{
							"$ref": "#/definitions/models.Category"
						}
					],
					"example": "dining"
				},
				"date": {
					"type": "string",
					"example": "2024-03-05"
				},
				"type": {
					"allOf": [
						{
							"$ref": "#/definitions/models.TransactionType"
						}
					],
					"example": "expense"
				}
			}
		},
		"handlers.CreateTransactionResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string",
					"example": "Transaction saved successfully"
				},
				"summary": {
					"$ref": "#/definitions/handlers.TransactionSummary"
				},
				"transaction": {
					"$ref": "#/definitions/handlers.TransactionResponse"
				}
			}
		},
		"handlers.SearchResponse": {
			"type": "object",
			"properties": {
				"hasMore": {
					"type": "boolean",
					"example": true
				},
				"summaryStats": {
					"$ref": "#/definitions/services.SummaryStats"
				},
				"totalCount": {
					"type": "integer",
					"example": 20
				},
				"transactions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handlers.TransactionResponse"
					}
				}
			}
		},
		"handlers.DashboardResponse": {
			"type": "object",
			"properties": {
				"categoryData": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/services.CategorySpending"
					}
				},
				"monthlyTrends": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/services.MonthlyTrend"
					}
				},
				"recentTransactions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handlers.TransactionResponse"
					}
				},
				"savingsGoal": {
					"$ref": "#/definitions/services.SavingsGoalProgress"
				},
				"summaryStats": {
					"$ref": "#/definitions/services.SummaryStats"
				},
				"weeklySpending": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/services.DailySpending"
					}
				}
			}
		},
		"handlers.CategoryResponse": {
			"type": "object",
			"properties": {
				"color": {
					"type": "string",
					"example": "#f97316"
				},
				"name": {
					"allOf": [
						{
							"$ref": "#/definitions/models.Category"
						}
					],
					"example": "dining"
				}
			}
		},
		"handlers.CategoriesResponse": {
			"type": "object",
			"properties": {
				"categories": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handlers.CategoryResponse"
					}
				},
				"types": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.TransactionType"
					}
				}
			}
		},
		"handlers.AdvisorRequest": {
			"type": "object",
			"properties": {
				"conversation_id": {
					"type": "string",
					"example": "conv_123"
				},
				"message": {
					"type": "string",
					"example": "How can I cut my dining spending?"
				}
			}
		},
		"handlers.AdvisorResponse": {
			"type": "object",
			"properties": {
				"conversation_id": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.Category": {
			"type": "string",
			"enum": [
				"groceries",
				"rent",
				"utilities",
				"dining",
				"transportation",
				"entertainment",
				"shopping",
				"healthcare",
				"salary",
				"freelance",
				"investments",
				"other"
			],
			"x-enum-varnames": [
				"CategoryGroceries",
				"CategoryRent",
				"CategoryUtilities",
				"CategoryDining",
				"CategoryTransportation",
				"CategoryEntertainment",
				"CategoryShopping",
				"CategoryHealthcare",
				"CategorySalary",
				"CategoryFreelance",
				"CategoryInvestments",
				"CategoryOther"
			]
		},
		"models.TransactionType": {
			"type": "string",
			"enum": [
				"expense",
				"income"
			],
			"x-enum-varnames": [
				"TransactionTypeExpense",
				"TransactionTypeIncome"
			]
		},
		"services.SummaryStats": {
			"type": "object",
			"properties": {
				"savings": {
					"type": "number"
				},
				"totalExpenses": {
					"type": "number"
				},
				"totalIncome": {
					"type": "number"
				},
				"transactionCount": {
					"type": "integer"
				}
			}
		},
		"services.CategorySpending": {
			"type": "object",
			"properties": {
				"color": {
					"type": "string"
				},
				"name": {
					"$ref": "#/definitions/models.Category"
				},
				"value": {
					"type": "number"
				}
			}
		},
		"services.DailySpending": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number"
				},
				"date": {
					"type": "string"
				},
				"day": {
					"type": "string"
				}
			}
		},
		"services.MonthlyTrend": {
			"type": "object",
			"properties": {
				"expenses": {
					"type": "number"
				},
				"income": {
					"type": "number"
				},
				"key": {
					"type": "string"
				},
				"month": {
					"type": "string"
				},
				"savings": {
					"type": "number"
				}
			}
		},
		"services.SavingsGoalProgress": {
			"type": "object",
			"properties": {
				"goal": {
					"type": "number"
				},
				"progressPct": {
					"type": "number"
				},
				"saved": {
					"type": "number"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/api",
	Schemes:		  []string{},
	Title:			"Fintrack API",
	Description:	  "Fintrack records income and expenses, aggregates them for charts and search, and relays budgeting questions to an AI advisor.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
