// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-report/backend/config"
	"github.com/expense-report/backend/internal/infra/dependency"
	"github.com/expense-report/backend/internal/integration/persistence/model"
	"github.com/expense-report/backend/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	adminCPF        = "123.456.789-00"
	collaboratorCPF = "987.654.321-00"
	defaultPassword = "SecurePass123"
)

// pngBytes is a minimal PNG payload for receipt uploads.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

var (
	serverOnce sync.Once
	testDB     *mock.Db
	serverPort int
	portOnce   sync.Once
)

// testContext holds the state of one scenario.
type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	response *response

	db *mock.Db

	accessToken  string
	refreshToken string

	companyID      uuid.UUID
	projectID      uuid.UUID
	collaboratorID uuid.UUID
	userID         uuid.UUID
	expenseID      uuid.UUID
	receiptID      uuid.UUID
	lastID         uuid.UUID
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

func initializePort() {
	portOnce.Do(func() {
		serverPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(serverPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("BUSINESS_TIMEZONE", "UTC")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", serverPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"companies":      &model.CompanyModel{},
			"projects":       &model.ProjectModel{},
			"collaborators":  &model.CollaboratorModel{},
			"expenses":       &model.ExpenseModel{},
			"receipts":       &model.ReceiptModel{},
		}),
	}
	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account setup steps
	ctx.Given(`^an administrator exists with CPF "([^"]*)" and password "([^"]*)"$`, test.anAdministratorExists)
	ctx.Given(`^a collaborator exists with CPF "([^"]*)" and password "([^"]*)"$`, test.aCollaboratorExists)
	ctx.Given(`^an inactive collaborator exists with CPF "([^"]*)" and password "([^"]*)"$`, test.anInactiveCollaboratorExists)
	ctx.Given(`^I am logged in as an administrator$`, test.iAmLoggedInAsAnAdministrator)
	ctx.Given(`^I am logged in as a collaborator$`, test.iAmLoggedInAsACollaborator)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Registry setup steps
	ctx.Given(`^a company exists with legal name "([^"]*)" and CNPJ "([^"]*)"$`, test.aCompanyExists)
	ctx.Given(`^a project exists named "([^"]*)"$`, test.aProjectExists)
	ctx.Given(`^an expense exists for "([^"]*)" with amount "([^"]*)"$`, test.anExpenseExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I submit an expense with amount "([^"]*)" and a receipt image$`, test.iSubmitAnExpenseWithReceipt)
	ctx.When(`^I submit an expense with amount "([^"]*)" and no receipt image$`, test.iSubmitAnExpenseWithoutReceipt)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response should not contain "([^"]*)"$`, test.theResponseShouldNotContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should be an attachment named "([^"]*)"$`, test.theResponseShouldBeAnAttachmentNamed)
	ctx.Then(`^the response content type should be "([^"]*)"$`, test.theResponseContentTypeShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.companyID = uuid.Nil
	t.projectID = uuid.Nil
	t.collaboratorID = uuid.Nil
	t.userID = uuid.Nil
	t.expenseID = uuid.Nil
	t.receiptID = uuid.Nil
	t.lastID = uuid.Nil

	return t.db.Reset()
}

func (t *testContext) startServer() {
	serverOnce.Do(func() {
		go func() {
			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.Conn, time.UTC)
			engine := injector.Router.Setup(cfg.Server.Environment)

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", serverPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to come up
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// Account setup

func (t *testContext) anAdministratorExists(cpf, password string) error {
	userID := uuid.New()
	t.userID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Name:         "Administrador Teste",
		CPF:          cpf,
		PasswordHash: hashPassword(password),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.Conn.Create(user).Error
}

func (t *testContext) aCollaboratorExists(cpf, password string) error {
	return t.createCollaborator(cpf, password, true)
}

func (t *testContext) anInactiveCollaboratorExists(cpf, password string) error {
	return t.createCollaborator(cpf, password, false)
}

func (t *testContext) createCollaborator(cpf, password string, active bool) error {
	collaboratorID := uuid.New()
	t.collaboratorID = collaboratorID

	var projectIDs pq.StringArray
	if t.projectID != uuid.Nil {
		projectIDs = pq.StringArray{t.projectID.String()}
	}

	now := time.Now().UTC()
	collaborator := &model.CollaboratorModel{
		ID:           collaboratorID,
		Name:         "Colaborador Teste",
		CPF:          cpf,
		PasswordHash: hashPassword(password),
		CardNumber:   "1234",
		Active:       active,
		CompanyID:    t.companyID,
		ProjectIDs:   projectIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.Conn.Create(collaborator).Error
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashed)
}

func (t *testContext) iAmLoggedInAsAnAdministrator() error {
	if err := t.anAdministratorExists(adminCPF, defaultPassword); err != nil {
		return err
	}
	return t.login(adminCPF, defaultPassword)
}

func (t *testContext) iAmLoggedInAsACollaborator() error {
	if err := t.aCollaboratorExists(collaboratorCPF, defaultPassword); err != nil {
		return err
	}
	return t.login(collaboratorCPF, defaultPassword)
}

func (t *testContext) login(cpf, password string) error {
	payload, _ := json.Marshal(map[string]string{
		"cpf":      cpf,
		"password": password,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", payload, "application/json"); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", t.response.status, string(t.response.raw))
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return errors.New("login response is not a JSON object")
	}
	t.accessToken, _ = body["access_token"].(string)
	t.refreshToken, _ = body["refresh_token"].(string)
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

// Registry setup

func (t *testContext) aCompanyExists(legalName, cnpj string) error {
	companyID := uuid.New()
	t.companyID = companyID

	now := time.Now().UTC()
	company := &model.CompanyModel{
		ID:        companyID,
		LegalName: legalName,
		CNPJ:      cnpj,
		Address:   "Rua Teste, 100",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.Conn.Create(company).Error
}

func (t *testContext) aProjectExists(name string) error {
	projectID := uuid.New()
	t.projectID = projectID

	now := time.Now().UTC()
	project := &model.ProjectModel{
		ID:        projectID,
		Name:      name,
		Location:  "São Paulo",
		Status:    "EM ANDAMENTO",
		CompanyID: t.companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.Conn.Create(project).Error
}

func (t *testContext) anExpenseExists(collaboratorName, amount string) error {
	expenseID := uuid.New()
	receiptID := uuid.New()
	t.expenseID = expenseID
	t.receiptID = receiptID

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	now := time.Now().UTC()
	expense := &model.ExpenseModel{
		ID:               expenseID,
		CollaboratorName: collaboratorName,
		City:             "São Paulo",
		Location:         "Posto Central",
		Description:      "Combustível",
		Amount:           value,
		Complement:       "abastecimento",
		CardNumber:       "1234",
		RegisteredAt:     now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := t.db.Conn.Create(expense).Error; err != nil {
		return err
	}

	receipt := &model.ReceiptModel{
		ID:         receiptID,
		ExpenseID:  expenseID,
		Content:    pngBytes,
		FileName:   collaboratorName + "_recibo.png",
		UploadedAt: now,
	}
	return t.db.Conn.Create(receipt).Error
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil, "")
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	return t.executeRequest(method, t.replacePlaceholders(path), payload, "application/json")
}

func (t *testContext) iSubmitAnExpenseWithReceipt(amount string) error {
	return t.submitExpense(amount, true)
}

func (t *testContext) iSubmitAnExpenseWithoutReceipt(amount string) error {
	return t.submitExpense(amount, false)
}

func (t *testContext) submitExpense(amount string, withReceipt bool) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"cidade":      "São Paulo",
		"local":       "Restaurante Central",
		"valor":       amount,
		"complemento": "Almoço com a equipe",
		"descricao":   "Refeição",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}

	if withReceipt {
		part, err := writer.CreateFormFile("imagem", "recibo.png")
		if err != nil {
			return err
		}
		if _, err := part.Write(pngBytes); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return t.executeRequest(http.MethodPost, "/api/v1/expenses", buf.Bytes(), writer.FormDataContentType())
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{company_id}}", t.companyID.String())
	content = strings.ReplaceAll(content, "{{project_id}}", t.projectID.String())
	content = strings.ReplaceAll(content, "{{collaborator_id}}", t.collaboratorID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.userID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.expenseID.String())
	content = strings.ReplaceAll(content, "{{receipt_id}}", t.receiptID.String())
	content = strings.ReplaceAll(content, "{{id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte, contentType string) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
		raw:    raw,
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err == nil {
		t.response.body = parsed
		t.captureID(parsed)
	} else {
		t.response.body = string(raw)
	}

	return nil
}

// captureID remembers the ID of a created resource for later placeholders.
func (t *testContext) captureID(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		if nested, ok := body["expense"].(map[string]any); ok {
			idStr, _ = nested["id"].(string)
		}
	}
	if id, err := uuid.Parse(idStr); err == nil {
		t.lastID = id
	}
}

// Response assertions

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(unexpected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if strings.Contains(string(t.response.raw), unexpected) {
		return fmt.Errorf("response should not contain %q (body: %s)", unexpected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.fieldValue(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.fieldValue(field)
	return err
}

func (t *testContext) fieldValue(dotSeparatedField string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	var field any = t.response.body
	for _, current := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil, fmt.Errorf("field %q not found in response (body: %s)", dotSeparatedField, string(t.response.raw))
		}
		if i, err := strconv.Atoi(current); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", dotSeparatedField, string(t.response.raw))
			}
			field = arr[i]
			continue
		}
		m, ok := field.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q not found in response (body: %s)", dotSeparatedField, string(t.response.raw))
		}
		field = m[current]
	}

	if field == nil {
		return nil, fmt.Errorf("field %q not found in response (body: %s)", dotSeparatedField, string(t.response.raw))
	}
	return field, nil
}

func (t *testContext) theResponseShouldBeAnAttachmentNamed(fileName string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	disposition := t.response.header.Get("Content-Disposition")
	if !strings.HasPrefix(disposition, "attachment") {
		return fmt.Errorf("expected an attachment, got Content-Disposition %q", disposition)
	}
	if !strings.Contains(disposition, fileName) {
		return fmt.Errorf("expected attachment named %q, got Content-Disposition %q", fileName, disposition)
	}
	if len(t.response.raw) == 0 {
		return errors.New("attachment body is empty")
	}
	return nil
}

func (t *testContext) theResponseContentTypeShouldBe(contentType string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	actual := t.response.header.Get("Content-Type")
	if !strings.HasPrefix(actual, contentType) {
		return fmt.Errorf("expected content type %q, got %q", contentType, actual)
	}
	return nil
}

// Database assertions

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.Conn.Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}
