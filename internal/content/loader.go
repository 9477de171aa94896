package content

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraincognita07/babybloom/internal/models"
)

const (
	WeeksFile    = "pregnancy_weeks.json"
	SymptomsFile = "symptoms.json"
	MappingsFile = "symptom_week_map.json"
)

// Tables holds the three reference tables in file order.
type Tables struct {
	Weeks    []models.WeekRecord
	Symptoms []models.SymptomRecord
	Mappings []models.SymptomWeekMapping
	Checksum string
}

// LoadDir reads, normalizes and validates the content files in dir.
func LoadDir(dir string) (Tables, error) {
	weeksRaw, err := readContentFile(dir, WeeksFile)
	if err != nil {
		return Tables{}, err
	}
	symptomsRaw, err := readContentFile(dir, SymptomsFile)
	if err != nil {
		return Tables{}, err
	}
	mappingsRaw, err := readContentFile(dir, MappingsFile)
	if err != nil {
		return Tables{}, err
	}

	tables := Tables{}
	if err := decodeStrict(weeksRaw, &tables.Weeks); err != nil {
		return Tables{}, fmt.Errorf("parse %s: %w", WeeksFile, err)
	}
	if err := decodeStrict(symptomsRaw, &tables.Symptoms); err != nil {
		return Tables{}, fmt.Errorf("parse %s: %w", SymptomsFile, err)
	}
	if err := decodeStrict(mappingsRaw, &tables.Mappings); err != nil {
		return Tables{}, fmt.Errorf("parse %s: %w", MappingsFile, err)
	}

	normalizeTables(&tables)
	if err := Validate(tables); err != nil {
		return Tables{}, err
	}

	tables.Checksum = checksum(
		namedContent{name: WeeksFile, raw: weeksRaw},
		namedContent{name: SymptomsFile, raw: symptomsRaw},
		namedContent{name: MappingsFile, raw: mappingsRaw},
	)
	return tables, nil
}

func readContentFile(dir string, name string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return raw, nil
}

func decodeStrict(raw []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func normalizeTables(tables *Tables) {
	for index := range tables.Weeks {
		week := &tables.Weeks[index]
		if trimester, ok := models.ParseTrimester(string(week.Trimester)); ok {
			week.Trimester = trimester
		}
		week.CommonChanges = trimmedStrings(week.CommonChanges)
	}

	for index := range tables.Symptoms {
		symptom := &tables.Symptoms[index]
		symptom.Symptom = models.NormalizeSymptomName(symptom.Symptom)
		symptom.SafeRemedies = trimmedStrings(symptom.SafeRemedies)
		symptom.WarningSigns = trimmedStrings(symptom.WarningSigns)
	}

	for index := range tables.Mappings {
		mapping := &tables.Mappings[index]
		mapping.Position = index
		mapping.Symptom = models.NormalizeSymptomName(mapping.Symptom)
		if severity, ok := models.ParseSeverity(string(mapping.Severity)); ok {
			mapping.Severity = severity
		}
		mapping.WeekContext = strings.TrimSpace(mapping.WeekContext)
	}
}

func trimmedStrings(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

type namedContent struct {
	name string
	raw  []byte
}

func checksum(files ...namedContent) string {
	hash := sha256.New()
	for _, file := range files {
		hash.Write([]byte(file.name))
		hash.Write([]byte{0})
		hash.Write(file.raw)
		hash.Write([]byte{0})
	}
	return hex.EncodeToString(hash.Sum(nil))
}
