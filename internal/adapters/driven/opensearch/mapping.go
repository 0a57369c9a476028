package opensearch

// DateFormat accepts canonical timestamps, bare days and epoch millis.
const DateFormat = "yyyy-MM-dd'T'HH:mm:ss||yyyy-MM-dd||epoch_millis"

// IndexMapping returns the settings and mappings the index is created with.
func IndexMapping() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"analysis": map[string]any{
				"tokenizer": map[string]any{
					"autocomplete_tokenizer": map[string]any{
						"type":        "edge_ngram",
						"min_gram":    2,
						"max_gram":    20,
						"token_chars": []string{"letter", "digit"},
					},
				},
				"char_filter": map[string]any{
					"collapse_whitespace": map[string]any{
						"type":        "pattern_replace",
						"pattern":     "\\s+",
						"replacement": " ",
					},
				},
				"filter": map[string]any{
					"english_stop": map[string]any{
						"type":      "stop",
						"stopwords": "_english_",
					},
					"english_stemmer": map[string]any{
						"type":     "stemmer",
						"language": "english",
					},
				},
				"analyzer": map[string]any{
					"autocomplete": map[string]any{
						"type":      "custom",
						"tokenizer": "autocomplete_tokenizer",
						"filter":    []string{"lowercase"},
					},
					"content_analyzer": map[string]any{
						"type":        "custom",
						"tokenizer":   "standard",
						"char_filter": []string{"html_strip"},
						"filter":      []string{"lowercase", "english_stop", "english_stemmer"},
					},
				},
				"normalizer": map[string]any{
					"place_normalizer": map[string]any{
						"type":        "custom",
						"char_filter": []string{"collapse_whitespace"},
						"filter":      []string{"lowercase", "asciifolding"},
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"id": map[string]any{"type": "keyword"},
				"title": map[string]any{
					"type":            "text",
					"analyzer":        "autocomplete",
					"search_analyzer": "standard",
					"fields": map[string]any{
						"keyword": map[string]any{"type": "keyword", "ignore_above": 256},
					},
				},
				"content": map[string]any{
					"type":     "text",
					"analyzer": "content_analyzer",
				},
				"authors": map[string]any{
					"type": "nested",
					"properties": map[string]any{
						"first_name": map[string]any{"type": "text"},
						"last_name":  map[string]any{"type": "text"},
						"email":      map[string]any{"type": "keyword"},
					},
				},
				"date": map[string]any{
					"type":   "date",
					"format": DateFormat,
				},
				"extracted_dates": map[string]any{
					"type":   "date",
					"format": DateFormat,
				},
				"temporal_expressions": map[string]any{
					"type": "text",
					"fields": map[string]any{
						"keyword": map[string]any{"type": "keyword"},
					},
				},
				"georeferences": map[string]any{
					"type": "text",
					"fields": map[string]any{
						"keyword":    map[string]any{"type": "keyword"},
						"normalized": map[string]any{"type": "keyword", "normalizer": "place_normalizer"},
					},
				},
				"geopoint":        map[string]any{"type": "geo_point"},
				"geo_points":      map[string]any{"type": "geo_point"},
				"location_source": map[string]any{"type": "keyword"},
				"source_file":     map[string]any{"type": "keyword"},
			},
		},
	}
}
