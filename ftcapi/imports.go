package ftcapi

import "sort"

// Framework and navigation import paths.
const (
	ImportLinearOpMode = "com.qualcomm.robotcore.eventloop.opmode.LinearOpMode"
	ImportTeleOp       = "com.qualcomm.robotcore.eventloop.opmode.TeleOp"
	ImportAutonomous   = "com.qualcomm.robotcore.eventloop.opmode.Autonomous"
	ImportDistanceUnit = "org.firstinspires.ftc.robotcore.external.navigation.DistanceUnit"
	ImportAngleUnit    = "org.firstinspires.ftc.robotcore.external.navigation.AngleUnit"
)

// Enumeration of import categories in emission order.
const (
	impFramework = iota
	impHardware
	impVision
	impNavigation
)

// importCategories assigns a category to every import path the translator
// can produce.  Imports are emitted grouped by category in the order above
// and alphabetically within a category, so output is deterministic.
var importCategories = map[string]int{
	ImportLinearOpMode: impFramework,
	ImportTeleOp:       impFramework,
	ImportAutonomous:   impFramework,

	ImportDistanceUnit: impNavigation,
	ImportAngleUnit:    impNavigation,
}

func init() {
	for kind, path := range javaImports {
		switch kind {
		case KindWebcam, KindAprilTag, KindTensorFlow, KindVisionPortal:
			importCategories[path] = impVision
		default:
			importCategories[path] = impHardware
		}
	}
}

// SortImports orders a set of import paths into the fixed category order.
func SortImports(set map[string]struct{}) []string {
	paths := make([]string, 0, len(set))
	for path := range set {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool {
		ci, cj := importCategories[paths[i]], importCategories[paths[j]]
		if ci != cj {
			return ci < cj
		}

		return paths[i] < paths[j]
	})

	return paths
}
