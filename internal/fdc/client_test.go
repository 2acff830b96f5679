package fdc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearch_SendsParameters(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/search", r.URL.Path)
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalHits": 1, "foods": [{"fdcId": 1, "description": "Milk", "dataType": "Survey (FNDDS)"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	res, err := c.Search(context.Background(), SearchParams{
		Query:      "whole milk",
		AllWords:   true,
		PageNumber: 2,
		PageSize:   5,
		Category:   CategorySurvey,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"query":           "whole milk",
		"api_key":         "secret",
		"pageSize":        "5",
		"pageNumber":      "2",
		"requireAllWords": "true",
		"dataType":        "Survey (FNDDS)",
		"format":          "abridged",
	}, got)
	assert.Len(t, res.Buckets[BucketSurvey], 1)
}

func TestClientSearch_NoFilterOmitsDataType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["dataType"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"totalHits": 0, "foods": []}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "k").Search(context.Background(), SearchParams{Query: "x", PageNumber: 1, PageSize: 20})

	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestClientSearch_NonSuccessIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "API rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, "k").Search(context.Background(), SearchParams{Query: "x", PageNumber: 1, PageSize: 20})

	require.ErrorIs(t, err, ErrUpstream)
	assert.Nil(t, res)
}

func TestClientSearch_MalformedBodyIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").Search(context.Background(), SearchParams{Query: "x", PageNumber: 1, PageSize: 20})

	require.ErrorIs(t, err, ErrUpstream)
}

func TestClientFoodDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/food/171265":
			_, _ = w.Write([]byte(`{"fdcId": 171265, "dataType": "SR Legacy", "description": "Milk"}`))
		case "/food/404":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")

	body, err := c.FoodDetail(context.Background(), 171265)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"SR Legacy"`)

	_, err = c.FoodDetail(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFoodNotFound)

	_, err = c.FoodDetail(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstream)
}
