package birrtstar

import "github.com/billx09/hpp-core/param"

func init() {
	param.Declare(param.Description{
		Key:     "BiRRT*/maxStepLength",
		Default: DefaultMaxStepLength,
		Doc:     "The maximum step length when extending. If not positive, uses sqrt(DOF)",
	})
	param.Declare(param.Description{
		Key:     "BiRRT*/gamma",
		Default: DefaultGamma,
		Doc:     "Rewiring-radius scale in r = gamma * (log n / n)^(1/DOF)",
	})
}
