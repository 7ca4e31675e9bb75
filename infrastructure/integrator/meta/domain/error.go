package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// APIError é o erro devolvido quando a Graph API responde fora da faixa 2xx
type APIError struct {
	StatusCode int
	Details    *ErrorDetails
	Body       string
}

func (e *APIError) Error() string {
	if e.Details != nil && (e.Details.Code != 0 || e.Details.Message != "") {
		return fmt.Sprintf("meta api error %d: %s (status %d, fbtrace_id %s)",
			e.Details.Code, e.Details.Message, e.StatusCode, e.Details.FBTraceID)
	}
	return fmt.Sprintf("meta api error: status %d, body: %s", e.StatusCode, e.Body)
}

// Code retorna o código de erro da Graph API, ou zero quando a resposta não trouxe payload de erro
func (e *APIError) Code() int {
	if e.Details == nil {
		return 0
	}
	return e.Details.Code
}

func (e *APIError) IsTokenExpired() bool {
	if e.Details == nil {
		return false
	}
	resp := ErrorResponse{Error: *e.Details}
	return resp.IsTokenExpired()
}
