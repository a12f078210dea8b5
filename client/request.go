package client

// taskRequest is the wire shape shared by every caikit task endpoint:
// model_id and inputs at the top level, optional generation parameters
// nested under "parameters". The inputs shape is task specific, a plain
// string for generation and embedding, an object for similarity and rerank.
type taskRequest struct {
	ModelID    string            `json:"model_id"`
	Inputs     any               `json:"inputs"`
	Parameters *GenerationParams `json:"parameters,omitempty"`
}

func newTaskRequest(modelID string, inputs any, params []GenerationParam) *taskRequest {
	return &taskRequest{
		ModelID:    modelID,
		Inputs:     inputs,
		Parameters: applyGenerationParams(params),
	}
}

func (r *taskRequest) validate() error {
	if r.ModelID == "" {
		return ErrMissingModelID
	}
	return nil
}

// ExponentialDecayLengthPenalty tunes the length penalty applied from
// start_index onwards during decoding.
type ExponentialDecayLengthPenalty struct {
	StartIndex  int     `json:"start_index"`
	DecayFactor float64 `json:"decay_factor"`
}

// GenerationParams are the optional tuning fields controlling the remote
// model's decoding behavior. Unset fields are omitted from the request body
// so the runtime applies its own defaults.
type GenerationParams struct {
	MaxNewTokens                  *int                           `json:"max_new_tokens,omitempty"`
	MinNewTokens                  *int                           `json:"min_new_tokens,omitempty"`
	TruncateInputTokens           *int                           `json:"truncate_input_tokens,omitempty"`
	DecodingMethod                *string                        `json:"decoding_method,omitempty"`
	TopK                          *int                           `json:"top_k,omitempty"`
	TopP                          *float64                       `json:"top_p,omitempty"`
	TypicalP                      *float64                       `json:"typical_p,omitempty"`
	Temperature                   *float64                       `json:"temperature,omitempty"`
	RepetitionPenalty             *float64                       `json:"repetition_penalty,omitempty"`
	MaxTime                       *float64                       `json:"max_time,omitempty"`
	ExponentialDecayLengthPenalty *ExponentialDecayLengthPenalty `json:"exponential_decay_length_penalty,omitempty"`
	StopSequences                 []string                       `json:"stop_sequences,omitempty"`
	Seed                          *int                           `json:"seed,omitempty"`
	PreserveInputText             *bool                          `json:"preserve_input_text,omitempty"`
	InputTokens                   *bool                          `json:"input_tokens,omitempty"`
	GeneratedTokens               *bool                          `json:"generated_tokens,omitempty"`
	TokenLogprobs                 *bool                          `json:"token_logprobs,omitempty"`
	TokenRanks                    *bool                          `json:"token_ranks,omitempty"`
}

// GenerationParam sets a single generation parameter on a request.
type GenerationParam func(p *GenerationParams)

// applyGenerationParams folds the setters into a params struct, or nil when
// none are given so "parameters" is omitted from the encoded request.
func applyGenerationParams(params []GenerationParam) *GenerationParams {
	if len(params) == 0 {
		return nil
	}
	p := &GenerationParams{}
	for _, fn := range params {
		fn(p)
	}
	return p
}

// WithMaxNewTokens caps the number of generated tokens.
func WithMaxNewTokens(n int) GenerationParam {
	return func(p *GenerationParams) { p.MaxNewTokens = &n }
}

// WithMinNewTokens sets the minimum number of generated tokens.
func WithMinNewTokens(n int) GenerationParam {
	return func(p *GenerationParams) { p.MinNewTokens = &n }
}

// WithTruncateInputTokens truncates the prompt to the last n tokens.
func WithTruncateInputTokens(n int) GenerationParam {
	return func(p *GenerationParams) { p.TruncateInputTokens = &n }
}

// WithDecodingMethod selects the decoding method ("GREEDY" or "SAMPLING").
func WithDecodingMethod(method string) GenerationParam {
	return func(p *GenerationParams) { p.DecodingMethod = &method }
}

// WithTopK restricts sampling to the k most likely tokens.
func WithTopK(k int) GenerationParam {
	return func(p *GenerationParams) { p.TopK = &k }
}

// WithTopP restricts sampling to the smallest token set with cumulative
// probability p.
func WithTopP(topP float64) GenerationParam {
	return func(p *GenerationParams) { p.TopP = &topP }
}

// WithTypicalP sets the typical decoding mass.
func WithTypicalP(typicalP float64) GenerationParam {
	return func(p *GenerationParams) { p.TypicalP = &typicalP }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) GenerationParam {
	return func(p *GenerationParams) { p.Temperature = &t }
}

// WithRepetitionPenalty penalizes repeated tokens.
func WithRepetitionPenalty(penalty float64) GenerationParam {
	return func(p *GenerationParams) { p.RepetitionPenalty = &penalty }
}

// WithMaxTime bounds generation time in seconds, service side.
func WithMaxTime(seconds float64) GenerationParam {
	return func(p *GenerationParams) { p.MaxTime = &seconds }
}

// WithExponentialDecayLengthPenalty applies a length penalty growing
// exponentially from startIndex.
func WithExponentialDecayLengthPenalty(startIndex int, decayFactor float64) GenerationParam {
	return func(p *GenerationParams) {
		p.ExponentialDecayLengthPenalty = &ExponentialDecayLengthPenalty{
			StartIndex:  startIndex,
			DecayFactor: decayFactor,
		}
	}
}

// WithStopSequences stops generation when any of the sequences is produced.
func WithStopSequences(sequences ...string) GenerationParam {
	return func(p *GenerationParams) { p.StopSequences = sequences }
}

// WithSeed fixes the sampling seed.
func WithSeed(seed int) GenerationParam {
	return func(p *GenerationParams) { p.Seed = &seed }
}

// WithPreserveInputText controls whether the prompt is echoed back in the
// generated text.
func WithPreserveInputText(preserve bool) GenerationParam {
	return func(p *GenerationParams) { p.PreserveInputText = &preserve }
}

// WithInputTokens requests the tokenized prompt in the response.
func WithInputTokens(include bool) GenerationParam {
	return func(p *GenerationParams) { p.InputTokens = &include }
}

// WithGeneratedTokens requests the generated token list in the response.
func WithGeneratedTokens(include bool) GenerationParam {
	return func(p *GenerationParams) { p.GeneratedTokens = &include }
}

// WithTokenLogprobs requests per-token log probabilities.
func WithTokenLogprobs(include bool) GenerationParam {
	return func(p *GenerationParams) { p.TokenLogprobs = &include }
}

// WithTokenRanks requests per-token ranks.
func WithTokenRanks(include bool) GenerationParam {
	return func(p *GenerationParams) { p.TokenRanks = &include }
}
