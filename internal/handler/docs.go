package handler

import "net/http"

type Endpoint struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	RequiresAuth bool   `json:"requiresAuth"`
	Description  string `json:"description"`
	Example      string `json:"example,omitempty"`
}

type Docs struct {
	Version   string     `json:"version"`
	Endpoints []Endpoint `json:"endpoints"`
}

var endpoints = []Endpoint{
	{
		Method:      http.MethodPost,
		Path:        "/api/auth",
		Description: "Register a new diner and start a session",
		Example:     `curl -X POST localhost:3000/api/auth -d '{"name":"pizza diner","email":"d@jwt.com","password":"diner123"}' -H 'Content-Type: application/json'`,
	},
	{
		Method:      http.MethodPut,
		Path:        "/api/auth",
		Description: "Log in an existing user",
		Example:     `curl -X PUT localhost:3000/api/auth -d '{"email":"d@jwt.com","password":"diner123"}' -H 'Content-Type: application/json'`,
	},
	{
		Method:       http.MethodDelete,
		Path:         "/api/auth",
		RequiresAuth: true,
		Description:  "Log out and revoke the session token",
		Example:      `curl -X DELETE localhost:3000/api/auth -H 'Authorization: Bearer tttttt'`,
	},
	{
		Method:      http.MethodGet,
		Path:        "/api/order/menu",
		Description: "Get the pizza menu",
		Example:     `curl localhost:3000/api/order/menu`,
	},
	{
		Method:       http.MethodPut,
		Path:         "/api/order/menu",
		RequiresAuth: true,
		Description:  "Add an item to the menu (admin only)",
		Example:      `curl -X PUT localhost:3000/api/order/menu -H 'Content-Type: application/json' -d '{"title":"Student","description":"No topping, no sauce, just carbs","image":"pizza9.png","price":0.0001}' -H 'Authorization: Bearer tttttt'`,
	},
	{
		Method:       http.MethodGet,
		Path:         "/api/order",
		RequiresAuth: true,
		Description:  "Get the orders of the authenticated user, newest first",
		Example:      `curl 'localhost:3000/api/order?page=1' -H 'Authorization: Bearer tttttt'`,
	},
	{
		Method:       http.MethodPost,
		Path:         "/api/order",
		RequiresAuth: true,
		Description:  "Create an order for the authenticated user",
		Example:      `curl -X POST localhost:3000/api/order -H 'Content-Type: application/json' -d '{"franchiseId":1,"storeId":1,"items":[{"menuId":1}]}' -H 'Authorization: Bearer tttttt'`,
	},
	{
		Method:      http.MethodGet,
		Path:        "/api/metrics",
		Description: "Current metrics snapshot as JSON",
	},
	{
		Method:      http.MethodGet,
		Path:        "/api/health",
		Description: "Liveness and database reachability",
	},
	{
		Method:      http.MethodGet,
		Path:        "/api/docs",
		Description: "This document",
	},
}
