package coach

import (
	"fmt"
	"strings"

	"lifecoach/internal/model"
)

const analyzeSystemPrompt = `Jsi empatický asistent životního kouče. Tvým úkolem je analyzovat
pocity uživatele, jeho problémy a požadované změny a identifikovat 3 hlavní životní problémy.

Identifikuj přesně 3 problémy na základě toho, co uživatel sdílí. Každý problém by měl mít:
- id: číslo (1, 2 nebo 3)
- title: krátký, jasný název (max 50 znaků) - ČESKY
- description: podrobný, ale stručný popis problému (max 200 znaků) - ČESKY

Buď empatický a vnímavý ve své analýze. VŽDY odpovídej v češtině.`

const recommendSystemPrompt = `Jsi empatický a praktický životní kouč. Tvým úkolem je poskytnout
konkrétní doporučení pro každý životní problém, který uživatel potvrdil.

Pro každý problém poskytni konkrétní, realizovatelnou radu, která je:
- Praktická a dosažitelná
- Specifická, ne obecná
- Povzbuzující a podpůrná
- Zaměřená na konkrétní kroky, které uživatel může podniknout

Každé doporučení by mělo mít max 300 znaků. VŽDY odpovídej v češtině.`

func renderAnalyzeMessage(feeling, troubles, changes string) string {
	return fmt.Sprintf(`Prosím analyzuj mou situaci a identifikuj mé 3 hlavní životní problémy:

Jak se cítím: %s

Co mě trápí: %s

Co chci změnit: %s`, feeling, troubles, changes)
}

func formatProblems(problems []model.Problem) string {
	var sb strings.Builder
	for i, p := range problems {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Problém %d: %s\nPopis: %s", p.ID, p.Title, p.Description))
	}
	return sb.String()
}

func renderRecommendMessage(problems []model.Problem) string {
	return fmt.Sprintf(`Prosím poskytni konkrétní doporučení pro každý z těchto potvrzených problémů:

%s`, formatProblems(problems))
}
