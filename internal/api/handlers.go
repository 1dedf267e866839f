package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitegen_server/internal/archive"
	"sitegen_server/internal/orchestrator"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
	"sitegen_server/internal/wizard"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	sessions     *wizard.Store
	orchestrator *orchestrator.Orchestrator
	archiver     *archive.Archiver
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(sessions *wizard.Store, orch *orchestrator.Orchestrator, archiver *archive.Archiver) *APIHandler {
	return &APIHandler{
		sessions:     sessions,
		orchestrator: orch,
		archiver:     archiver,
	}
}

// --- Structs for API Requests/Responses ---

type WizardStateResponse struct {
	SessionID string         `json:"sessionId"`
	Step      wizard.Step    `json:"step"`
	Prompt    string         `json:"prompt"`
	Review    bool           `json:"review"`
	Settings  types.Settings `json:"settings"`
}

type AnswerRequest struct {
	Input string `json:"input"`
	Back  bool   `json:"back,omitempty"`
}

type GenerateRequest struct {
	SessionID string          `json:"sessionId,omitempty"`
	Settings  *types.Settings `json:"settings,omitempty"`
	UseRemote bool            `json:"useRemote"`
}

type GenerateResponse struct {
	ProjectID string                `json:"projectId"`
	Outcome   orchestrator.Outcome  `json:"outcome"`
	Notice    string                `json:"notice,omitempty"`
	Files     []types.GeneratedFile `json:"files"`
}

func wizardState(session wizard.Session) WizardStateResponse {
	return WizardStateResponse{
		SessionID: session.ID,
		Step:      session.Step,
		Prompt:    wizard.Prompt(session.Step),
		Review:    session.Step == wizard.StepReview,
		Settings:  session.Settings,
	}
}

// --- API Handlers ---

// POST /wizard/start
func (h *APIHandler) StartWizard(c *gin.Context) {
	session := h.sessions.Start()
	log.Printf("Started wizard session %s", session.ID)
	c.JSON(http.StatusCreated, wizardState(session))
}

// GET /wizard/:id
func (h *APIHandler) GetWizard(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}
	c.JSON(http.StatusOK, wizardState(session))
}

// POST /wizard/:id/answer
func (h *APIHandler) AnswerWizard(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	id := c.Param("id")
	var (
		session wizard.Session
		err     error
	)
	if req.Back {
		session, err = h.sessions.Back(id)
	} else {
		session, err = h.sessions.Answer(id, req.Input)
	}

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	case errors.Is(err, wizard.ErrComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Questionnaire is complete; call /project/generate", "state": wizardState(session)})
		return
	case err != nil:
		// Invalid answer for the current step; the step does not advance.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "state": wizardState(session)})
		return
	}

	c.JSON(http.StatusOK, wizardState(session))
}

// POST /project/generate
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var settings types.Settings
	switch {
	case req.SessionID != "":
		session, err := h.sessions.Get(req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
			return
		}
		settings = session.Settings
	case req.Settings != nil:
		settings = *req.Settings
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either sessionId or settings is required"})
		return
	}

	result, err := h.orchestrator.Generate(c.Request.Context(), settings, req.UseRemote)
	if err != nil {
		log.Printf("Error generating site: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	project, err := h.archiver.Materialize(result.Files, settings.Title)
	if err != nil {
		log.Printf("Error materializing project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write generated project"})
		return
	}

	if req.SessionID != "" {
		h.sessions.Delete(req.SessionID)
	}

	log.Printf("Site generation successful. Project ID: %s, outcome: %s, files: %d", project.ID, result.Outcome, len(result.Files))
	c.JSON(http.StatusCreated, GenerateResponse{
		ProjectID: project.ID,
		Outcome:   result.Outcome,
		Notice:    result.Notice,
		Files:     describeFiles(result.Files),
	})
}

// GET /project/:id/download
func (h *APIHandler) DownloadProject(c *gin.Context) {
	project, ok := h.archiver.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.FileAttachment(project.ArchivePath, "generated_frontend.zip")
}

// GET /project/:id/preview
func (h *APIHandler) PreviewProject(c *gin.Context) {
	path, ok := h.archiver.PreviewPath(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project preview not found"})
		return
	}
	c.File(path)
}

func describeFiles(files types.FileMapping) []types.GeneratedFile {
	out := make([]types.GeneratedFile, 0, len(files))
	for name, content := range files {
		out = append(out, types.GeneratedFile{
			Filename: name,
			Type:     utils.DetermineFileType(name),
			Content:  content,
		})
	}
	return out
}
