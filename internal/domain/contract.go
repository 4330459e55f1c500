package domain

import (
	"fmt"
	"strings"
)

// ContractViolation is the outcome of the docs-contract gate for one change
// set. Satisfied is true unless interface surface changed and no doc file
// changed alongside it.
type ContractViolation struct {
	InterfaceFilesChanged []string `json:"interface_files_changed"`
	DocFilesChanged       []string `json:"doc_files_changed"`
	Satisfied             bool     `json:"satisfied"`
}

// EvaluateContract applies the gate rule to a classified change set. The
// gate is file-count based, not path-correlated: any doc change in the set
// satisfies any interface change. Stricter correlation would change gate
// behavior materially and is left as an extension point.
func EvaluateContract(classified []ClassifiedFile) ContractViolation {
	interfaceFiles := PathsIn(classified, GroupInterface)
	docFiles := PathsIn(classified, GroupDoc)

	return ContractViolation{
		InterfaceFilesChanged: interfaceFiles,
		DocFilesChanged:       docFiles,
		Satisfied:             len(interfaceFiles) == 0 || len(docFiles) > 0,
	}
}

// Explanation returns a human-readable account of the gate decision.
func (v ContractViolation) Explanation() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interface files changed: %d\n", len(v.InterfaceFilesChanged))
	fmt.Fprintf(&b, "Doc files changed: %d\n", len(v.DocFilesChanged))

	if v.Satisfied {
		b.WriteString("Docs contract check passed.")
		return b.String()
	}

	b.WriteString("Blocking: public interface changed but docs were not updated.\n")
	for _, p := range v.InterfaceFilesChanged {
		fmt.Fprintf(&b, "  interface: %s\n", p)
	}
	b.WriteString("  docs: none")
	return b.String()
}
