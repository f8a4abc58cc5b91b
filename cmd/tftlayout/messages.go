package main

import "fmt"

var messages = map[string]map[string]string{
	"en": {
		"created":          "Created %s (%dx%d)",
		"saved":            "Layout saved to %s",
		"imported":         "Imported %s (%dx%d)",
		"removed":          "Removed %s",
		"cleared":          "Removed all elements",
		"files_written":    "Files written to %s",
		"code_written":     "Code written to %s",
		"preview":          "Preview written to %s",
		"skipped":          "Skipped %s",
		"stored":           "Stored %s",
		"unchanged":        "%s is unchanged",
		"no_elements":      "There are no elements on the canvas",
		"size_mismatch":    "%s is %d bytes, expected %d",
		"verified":         "%d files verified in %s",
		"watching":         "Watching %s",
		"config_written":   "Settings written to %s",
		"missing_elements": "%d element(s) could not be loaded, use --skip-missing to drop them",
	},
	"pt": {
		"created":          "%s criado (%dx%d)",
		"saved":            "Layout salvo em %s",
		"imported":         "%s importado (%dx%d)",
		"removed":          "%s removido",
		"cleared":          "Todos os elementos foram removidos",
		"files_written":    "Arquivos gravados em %s",
		"code_written":     "Código gravado em %s",
		"preview":          "Prévia gravada em %s",
		"skipped":          "%s ignorado",
		"stored":           "%s armazenado",
		"unchanged":        "%s não foi alterado",
		"no_elements":      "Não há elementos na tela",
		"size_mismatch":    "%s tem %d bytes, esperado %d",
		"verified":         "%d arquivos verificados em %s",
		"watching":         "Observando %s",
		"config_written":   "Configurações gravadas em %s",
		"missing_elements": "%d elemento(s) não puderam ser carregados, use --skip-missing para descartá-los",
	},
}

func message(language, key string, args ...interface{}) string {
	m, ok := messages[language]
	if !ok {
		m = messages["en"]
	}
	s, ok := m[key]
	if !ok {
		s = messages["en"][key]
	}
	return fmt.Sprintf(s, args...)
}
