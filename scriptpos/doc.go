// Package scriptpos defines component A: the closed, total enumeration of
// every point in the traversal where the engine hands control to a
// script, plus the mapping from each position to the script file that
// implements it and the runtime-expression accessor used to invoke it.
//
// Grounded on the original implementation's enums/common.rs Script enum
// (every VisitXxxStart/End and leaf variant, plus the distinguished
// Target and ErrorHandler positions referenced from main.rs) and on the
// startup validation in lib.rs's check_scripts/check_script, which this
// package's Validate mirrors: every position must resolve to a script
// file, and no two positions may resolve to the same file basename.
package scriptpos
