package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API do agente
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrMetaTokenExpired      = "AUTH_011" // Token do Meta expirado ou revogado

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidStatus       = "VAL_004" // Status de entrega inválido

	// Erros de configuração do agente
	ErrCredentialsNotConfigured = "CFG_001" // Credenciais do Meta ainda não configuradas
	ErrSyncDisabled             = "CFG_002" // Sincronização desligada
	ErrSyncRunning              = "CFG_003" // Sincronização já em andamento

	// Erros de roteamento
	ErrRouteNotFound    = "RES_001" // Rota inexistente
	ErrMethodNotAllowed = "RES_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrMetaAPI           = "SRV_005" // Erro devolvido pela Graph API
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:             http.StatusUnauthorized,
	ErrExpiredToken:             http.StatusUnauthorized,
	ErrInsufficientPrivilege:    http.StatusForbidden,
	ErrMetaTokenExpired:         http.StatusUnauthorized,
	ErrInvalidRequest:           http.StatusBadRequest,
	ErrMissingRequiredData:      http.StatusBadRequest,
	ErrInvalidFormat:            http.StatusBadRequest,
	ErrInvalidStatus:            http.StatusBadRequest,
	ErrCredentialsNotConfigured: http.StatusServiceUnavailable,
	ErrSyncDisabled:             http.StatusConflict,
	ErrSyncRunning:              http.StatusConflict,
	ErrRouteNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:         http.StatusMethodNotAllowed,
	ErrInternalServer:           http.StatusInternalServerError,
	ErrDatabaseOperation:        http.StatusInternalServerError,
	ErrExternalService:          http.StatusBadGateway,
	ErrCommunication:            http.StatusServiceUnavailable,
	ErrMetaAPI:                  http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
