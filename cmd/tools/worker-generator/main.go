// cmd/tools/worker-generator/main.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"tribunal-workers/pkg/registry"
)

// WorkerData is the template context for one scaffolded worker.
type WorkerData struct {
	Name         string
	PackageName  string
	TaskType     string
	Description  string
	Timeout      string
	InputFields  []Field
	OutputFields []Field
	InputSchema  string
}

// Field is one generated struct field.
type Field struct {
	Name    string
	GoType  string
	JSONTag string
	Comment string
}

// packageName turns a task type into the package name the worker-manager
// imports, e.g. record-decision-outcome -> recorddecisionoutcome.
func packageName(taskType string) string {
	return strings.ReplaceAll(taskType, "-", "")
}

func categoryDir(category string) string {
	switch category {
	case "decision-notice", "data-access", "communication":
		return category
	default:
		return strings.ToLower(category)
	}
}

// jsonType returns the non-null member of a "type" that may be a
// ["string", "null"] union.
func jsonType(raw interface{}) string {
	switch t := raw.(type) {
	case string:
		return t
	case []interface{}:
		for _, v := range t {
			if s, ok := v.(string); ok && s != "null" {
				return s
			}
		}
	}
	return ""
}

func goType(prop map[string]interface{}) string {
	switch jsonType(prop["type"]) {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	case "array":
		if items, ok := prop["items"].(map[string]interface{}); ok {
			if elem := goType(items); elem != "interface{}" {
				return "[]" + elem
			}
		}
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

// fieldName exports a camelCase property, keeping Id as ID.
func fieldName(prop string) string {
	if prop == "" {
		return prop
	}
	name := strings.ToUpper(prop[:1]) + prop[1:]
	if strings.HasSuffix(name, "Id") {
		name = strings.TrimSuffix(name, "Id") + "ID"
	}
	return name
}

// schemaFields lists the properties of schema in name order.
func schemaFields(schema map[string]interface{}) []Field {
	props, _ := schema["properties"].(map[string]interface{})
	required := map[string]bool{}
	if req, ok := schema["required"].([]interface{}); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		prop, _ := props[name].(map[string]interface{})
		tag := name
		if !required[name] {
			tag += ",omitempty"
		}
		desc, _ := prop["description"].(string)
		fields = append(fields, Field{
			Name:    fieldName(name),
			GoType:  goType(prop),
			JSONTag: fmt.Sprintf("`json:%q`", tag),
			Comment: desc,
		})
	}
	return fields
}

func newWorkerData(a *registry.Activity) (*WorkerData, error) {
	input, err := json.MarshalIndent(a.InputSchema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode input schema: %w", err)
	}
	return &WorkerData{
		Name:         a.DisplayName,
		PackageName:  packageName(a.TaskType),
		TaskType:     a.TaskType,
		Description:  a.Description,
		Timeout:      a.Timeout,
		InputFields:  schemaFields(a.InputSchema),
		OutputFields: schemaFields(a.OutputSchema),
		InputSchema:  string(input),
	}, nil
}

// render executes one template and gofmts the result.
func render(name, tmplStr string, data *WorkerData) ([]byte, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return src, nil
}

var templates = map[string]string{
	"config.go":     configTemplate,
	"models.go":     modelsTemplate,
	"validation.go": validationTemplate,
	"handler.go":    handlerTemplate,
}

func main() {
	activity := flag.String("activity", "", "Task type from the registry (e.g. record-decision-outcome)")
	outputDir := flag.String("output", "./internal/workers/", "Directory the worker package is created under")
	registryPath := flag.String("registry", "configs/activity-registry.json", "Path to the activity registry JSON file")
	force := flag.Bool("force", false, "Overwrite an existing worker package")
	flag.Parse()

	if *activity == "" {
		fmt.Println("Usage: worker-generator --activity <task-type> [--output <dir>] [--registry <path>] [--force]")
		fmt.Println("\nExample:")
		fmt.Println("  go run ./cmd/tools/worker-generator --activity notify-catalog-defect")
		os.Exit(1)
	}

	reg, err := registry.LoadRegistry(*registryPath)
	if err != nil {
		fmt.Printf("Error loading registry from %s: %v\n", *registryPath, err)
		os.Exit(1)
	}

	found, ok := reg.Find(*activity)
	if !ok {
		fmt.Printf("Activity '%s' not found in registry %s\n", *activity, *registryPath)
		os.Exit(1)
	}

	data, err := newWorkerData(found)
	if err != nil {
		fmt.Printf("Error preparing %s: %v\n", *activity, err)
		os.Exit(1)
	}

	workerDir := filepath.Join(*outputDir, categoryDir(found.Category), found.TaskType)
	if _, err := os.Stat(workerDir); err == nil && !*force {
		fmt.Printf("%s already exists, pass --force to overwrite\n", workerDir)
		os.Exit(1)
	}
	if err := os.MkdirAll(workerDir, 0o755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src, err := render(name, templates[name], data)
		if err != nil {
			fmt.Printf("Error generating %s: %v\n", name, err)
			os.Exit(1)
		}
		path := filepath.Join(workerDir, name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Generated %s\n", path)
	}

	fmt.Printf("\n✅ Worker scaffold generated at: %s\n", workerDir)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. Implement execute in handler.go\n")
	fmt.Printf("  2. Write handler_test.go\n")
	fmt.Printf("  3. Add the worker to internal/workers/activities.go and cmd/worker-manager/main.go\n")
	fmt.Printf("  4. Add its settings under workers: in configs/config.yaml\n")
}

const configTemplate = `package {{ .PackageName }}

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	timeout, err := time.ParseDuration("{{ .Timeout }}")
	if err != nil {
		timeout = 30 * time.Second
	}
	return &Config{Timeout: timeout}
}
`

const modelsTemplate = `package {{ .PackageName }}

type Input struct {
{{- range .InputFields }}
	{{ .Name }} {{ .GoType }} {{ .JSONTag }}{{ if .Comment }} // {{ .Comment }}{{ end }}
{{- end }}
}

type Output struct {
{{- range .OutputFields }}
	{{ .Name }} {{ .GoType }} {{ .JSONTag }}{{ if .Comment }} // {{ .Comment }}{{ end }}
{{- end }}
}
`

const validationTemplate = `package {{ .PackageName }}

import "tribunal-workers/internal/common/validation"

const inputSchema = ` + "`" + `{{ .InputSchema }}` + "`" + `

func GetInputSchema() validation.JSONSchema {
	schema, err := validation.GetSchemaFromJSON(inputSchema)
	if err != nil {
		panic(err)
	}
	return schema
}
`

const handlerTemplate = `package {{ .PackageName }}

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/validation"
)

const TaskType = "{{ .TaskType }}"

// Handler runs {{ .Name }}: {{ .Description }}.
type Handler struct {
	config       *Config
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		errorHandler: errors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	vars, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputSchemaInvalidError(fmt.Sprintf("parse variables: %v", err))
	}
	if result := validation.ValidateInput(vars, GetInputSchema()); !result.Valid {
		return nil, errors.NewInputSchemaInvalidError(strings.Join(result.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return nil, errors.NewInputSchemaInvalidError(fmt.Sprintf("decode input: %v", err))
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	return nil, errors.NewInternalError(fmt.Errorf("%s is not implemented", TaskType))
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err != nil {
		h.failJob(client, job, errors.NewInternalError(err))
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.errorHandler.HandleJobError(context.Background(), client, job, stdErr)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
`
