package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const (
	ProductIndex = "products"
	FaqIndex     = "faqs"
)

//
// --- INDEXING ---
//

// IndexProduct pushes a catalog record into the products index. Fire and
// forget: search falls back to a table scan when the index misses.
func IndexProduct(p models.Product) {
	indexDocument(ProductIndex, p.ID.String(), p)
}

func IndexFaq(f models.Faq) {
	indexDocument(FaqIndex, f.ID.String(), f)
}

func indexDocument(index, id string, doc any) {
	if database.Elastic == nil {
		log.Printf("⚠️ Elastic not initialized, cannot index %s/%s", index, id)
		return
	}

	data, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Elastic index error:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic returned an error for %s/%s: %s", index, id, res.String())
	}
}

// DeleteDocument removes a record from an index after a catalog delete.
func DeleteDocument(index, id string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{
		Index:      index,
		DocumentID: id,
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Elastic delete error:", err)
		return
	}
	res.Body.Close()
}

//
// --- SEARCH ---
//

// SearchProducts runs a multi_match over the products index.
func SearchProducts(query string) ([]map[string]interface{}, error) {
	return searchIndex(ProductIndex, query, []string{"title", "brand", "category", "description"})
}

// SearchFaqs matches a term against question, answer, category and tags,
// the same fields the content team fills in.
func SearchFaqs(query string) ([]map[string]interface{}, error) {
	return searchIndex(FaqIndex, query, []string{"question", "answer", "category", "tags"})
}

func searchIndex(index, query string, fields []string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("elasticsearch client not initialized")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": fields,
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("query encoding error: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{index},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("elastic request error: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch error: %+v", e)
		return nil, errors.New("index not found or empty")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("response decoding error: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("invalid Elastic response (no hits)")
	}

	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("no results found")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}

	return results, nil
}
