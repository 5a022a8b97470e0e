package research

import "strings"

const maxTopics = 10

type topicPattern struct {
	topic    string
	keywords []string
}

// taxonomy is matched in order; a topic is detected when any keyword occurs.
var taxonomy = []topicPattern{
	{"transformer", []string{"transformer", "attention mechanism", "bert", "gpt"}},
	{"computer_vision", []string{"computer vision", "image recognition", "cnn", "object detection"}},
	{"natural_language_processing", []string{"nlp", "natural language", "text processing", "language model"}},
	{"deep_learning", []string{"deep learning", "neural network", "backpropagation"}},
	{"machine_learning", []string{"machine learning", "ml algorithm", "supervised learning"}},
	{"generative_ai", []string{"generative", "gan", "diffusion", "stable diffusion", "dalle"}},
	{"reinforcement_learning", []string{"reinforcement learning", "q-learning", "policy gradient"}},
	{"unsupervised_learning", []string{"unsupervised", "clustering", "dimensionality reduction"}},
	{"federated_learning", []string{"federated learning", "distributed learning"}},
	{"explainable_ai", []string{"explainable", "interpretable", "xai", "shap"}},
	{"multimodal", []string{"multimodal", "vision-language", "clip", "blip"}},
	{"large_language_models", []string{"llm", "large language model", "chatgpt", "claude"}},
}

// techKeywords feed both topic extraction and relevance scoring.
var techKeywords = []string{
	"neural network", "deep learning", "machine learning", "transformer",
	"attention mechanism", "diffusion", "generative", "llm", "gpt",
	"bert", "vision transformer", "convolutional", "recurrent",
	"reinforcement learning", "unsupervised", "supervised", "self-supervised",
	"few-shot", "zero-shot", "fine-tuning", "pre-training",
	"multimodal", "computer vision", "natural language processing",
}

// ExtractTopics matches text against the fixed taxonomy and keyword list.
// Taxonomy topics come first, then keywords, without duplicates, at most ten.
func ExtractTopics(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var topics []string
	add := func(t string) {
		if !seen[t] && len(topics) < maxTopics {
			seen[t] = true
			topics = append(topics, t)
		}
	}

	for _, p := range taxonomy {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				add(p.topic)
				break
			}
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			add(kw)
		}
	}

	return topics
}

// queryTerms expands well-known topics into an arXiv OR query.
func queryTerms(topic string) string {
	clean := strings.ToLower(strings.ReplaceAll(topic, "_", " "))
	switch clean {
	case "transformer":
		return "transformer OR attention mechanism OR bert OR gpt"
	case "computer vision":
		return "computer vision OR image recognition OR cnn"
	case "natural language processing":
		return "natural language processing OR nlp OR language model"
	case "large language models":
		return "large language model OR llm OR gpt OR bert"
	case "generative ai":
		return "generative model OR gan OR diffusion OR stable diffusion"
	case "deep learning":
		return "deep learning OR neural network OR deep neural"
	case "machine learning":
		return "machine learning OR ml OR supervised learning"
	case "reinforcement learning":
		return "reinforcement learning OR rl OR q learning"
	default:
		return clean
	}
}

var topicCategories = []struct {
	key        string
	categories []string
}{
	{"machine learning", []string{"cs.LG", "stat.ML"}},
	{"deep learning", []string{"cs.LG", "cs.CV", "cs.CL"}},
	{"computer vision", []string{"cs.CV"}},
	{"natural language", []string{"cs.CL", "cs.AI"}},
	{"reinforcement learning", []string{"cs.LG", "cs.AI"}},
	{"generative ai", []string{"cs.LG", "cs.CV", "cs.CL"}},
	{"transformers", []string{"cs.LG", "cs.CL"}},
	{"diffusion models", []string{"cs.LG", "cs.CV"}},
	{"llms", []string{"cs.CL", "cs.AI"}},
	{"multimodal", []string{"cs.CV", "cs.CL", "cs.LG"}},
}

// categoriesFor maps a topic onto arXiv categories.
func categoriesFor(topic string) []string {
	clean := strings.ToLower(strings.ReplaceAll(topic, "_", " "))
	for _, tc := range topicCategories {
		if strings.Contains(clean, tc.key) || strings.Contains(tc.key, clean) {
			return tc.categories
		}
	}
	return []string{"cs.LG", "cs.AI", "cs.CV", "cs.CL"}
}
