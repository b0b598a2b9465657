package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/service"
)

// exportHeaders - заголовки колонок файла выгрузки
var exportHeaders = []string{"ID", "Question", "Answer", "Category ID", "Category", "Difficulty"}

// ExportHandler выгружает банк вопросов в CSV или Excel
type ExportHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	errMapper       *ErrorMapper
}

// NewExportHandler создает новый обработчик выгрузки
func NewExportHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
	errMapper *ErrorMapper,
) *ExportHandler {
	return &ExportHandler{
		questionService: questionService,
		categoryService: categoryService,
		errMapper:       errMapper,
	}
}

// ExportQuestions выгружает все вопросы с названиями категорий
// GET /export/questions?format=csv|xlsx
func (h *ExportHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest))
		return
	}

	questions, err := h.questionService.ListAll()
	if err != nil {
		h.errMapper.Respond(c, "ExportHandler", err, http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryService.ListAll()
	if err != nil {
		h.errMapper.Respond(c, "ExportHandler", err, http.StatusInternalServerError)
		return
	}
	categoryNames := entity.CategoryMap(categories)

	filename := fmt.Sprintf("trivia_questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, categoryNames, filename)
	default:
		h.exportCSV(c, questions, categoryNames, filename)
	}
}

// exportRow формирует строку выгрузки; категория без записи в categories остается пустой
func exportRow(q entity.Question, categoryNames map[uint]string) []string {
	categoryName := ""
	if q.Category >= 0 {
		categoryName = categoryNames[uint(q.Category)]
	}
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		sanitizeForExcel(q.Question),
		sanitizeForExcel(q.Answer),
		strconv.Itoa(q.Category),
		sanitizeForExcel(categoryName),
		strconv.Itoa(q.Difficulty),
	}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов
func (h *ExportHandler) exportCSV(c *gin.Context, questions []entity.Question, categoryNames map[uint]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, q := range questions {
		writer.Write(exportRow(q, categoryNames))
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *ExportHandler) exportXLSX(c *gin.Context, questions []entity.Question, categoryNames map[uint]string, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ExportHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, header := range exportHeaders {
		headers[i] = header
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ExportHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // 1 строка - заголовки
		cell := fmt.Sprintf("A%d", rowNum)
		row := exportRow(q, categoryNames)
		values := []interface{}{q.ID, row[1], row[2], q.Category, row[4], q.Difficulty}
		if err := sw.SetRow(cell, values); err != nil {
			log.Printf("[ExportHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ExportHandler] Ошибка при Flush: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ExportHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
