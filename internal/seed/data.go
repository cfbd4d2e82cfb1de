package seed

import "sidehustle/internal/model"

// SampleEntries is the built-in catalog written into an empty collection.
var SampleEntries = []model.Entry{
	{
		ID:           1,
		Title:        "Spaceship/Say/Regery 比价 + Cloudflare 免费解析/加速",
		Category:     "技术服务",
		Description:  "域名注册比价服务，结合CDN加速，为用户提供最优域名解决方案",
		Tools:        []string{"Spaceship", "Say", "Regery", "Cloudflare DNS"},
		Pricing:      "域名代购服务费 50-200元/次",
		Difficulty:   model.DifficultyEasy,
		Setup:        "1-2小时",
		Profit:       "月收入 2000-8000元",
		Requirements: []string{"基础英语能力", "支付账户", "客服沟通能力"},
		Steps:        []string{"注册各大域名商账户", "学习域名价格比较", "设置Cloudflare CDN", "建立客户服务流程"},
		Pros:         []string{"需求稳定", "重复客户多", "技术门槛低"},
		Cons:         []string{"需要垫付资金", "汇率波动风险"},
		Views:        1240,
		LastUpdated:  "2024-12-15",
		Featured:     true,
	},
	{
		ID:           2,
		Title:        "Supabase (PG+实时) + Upstash Redis + Cloudflare R2 存储",
		Category:     "技术服务",
		Description:  "为中小企业提供现代化数据栈搭建和维护服务",
		Tools:        []string{"Supabase", "Upstash Redis", "Cloudflare R2", "PostgreSQL"},
		Pricing:      "项目搭建 3000-8000元，月维护 500-2000元",
		Difficulty:   model.DifficultyMedium,
		Setup:        "1-2周学习 + 项目实践",
		Profit:       "月收入 5000-15000元",
		Requirements: []string{"数据库基础", "云服务经验", "英语读写能力"},
		Steps:        []string{"学习Supabase基础操作", "掌握Redis缓存策略", "了解R2存储配置", "建立客户案例库"},
		Pros:         []string{"技术含量高", "客单价高", "长期合作"},
		Cons:         []string{"学习成本高", "竞争激烈"},
		Views:        890,
		LastUpdated:  "2024-12-14",
	},
	{
		ID:           3,
		Title:        "Vercel / Cloudflare Pages 免费托管",
		Category:     "技术服务",
		Description:  "为个人和小企业提供网站部署和维护服务",
		Tools:        []string{"Vercel", "Cloudflare Pages", "Netlify", "GitHub Actions"},
		Pricing:      "部署服务 500-1500元，月维护 200-800元",
		Difficulty:   model.DifficultyEasy,
		Setup:        "2-3天",
		Profit:       "月收入 3000-12000元",
		Requirements: []string{"Git基础", "基础命令行", "域名知识"},
		Steps:        []string{"学习Git工作流", "掌握CI/CD概念", "配置自定义域名", "监控和维护流程"},
		Pros:         []string{"门槛低", "需求稳定", "自动化程度高"},
		Cons:         []string{"价格竞争激烈", "利润率低"},
		Views:        2100,
		LastUpdated:  "2024-12-16",
		Featured:     true,
	},
	{
		ID:           4,
		Title:        "YouTube 中文教学频道制作",
		Category:     "内容创作",
		Description:  "制作编程、生活技巧、产品评测等中文视频内容",
		Tools:        []string{"OBS Studio", "DaVinci Resolve", "Canva", "YouTube Studio"},
		Pricing:      "广告收入 + 赞助 + 课程销售",
		Difficulty:   model.DifficultyMedium,
		Setup:        "1-2个月建立频道",
		Profit:       "月收入 1000-20000元",
		Requirements: []string{"视频剪辑", "内容策划", "持续更新能力"},
		Steps:        []string{"确定频道定位和目标受众", "学习视频拍摄和剪辑技巧", "制作高质量内容", "优化SEO和缩略图设计"},
		Pros:         []string{"被动收入潜力大", "个人品牌建设", "技能可复用"},
		Cons:         []string{"前期收入低", "需要长期坚持", "平台政策风险"},
		Views:        2341,
		LastUpdated:  "2024-12-16",
	},
	{
		ID:           5,
		Title:        "小红书知识博主 + 付费咨询",
		Category:     "内容创作",
		Description:  "分享专业知识，建立个人IP，提供一对一咨询服务",
		Tools:        []string{"小红书", "微信", "Notion", "Canva"},
		Pricing:      "咨询费 200-800元/小时，课程 299-1999元",
		Difficulty:   model.DifficultyEasy,
		Setup:        "1-2周",
		Profit:       "月收入 3000-15000元",
		Requirements: []string{"某个领域专业知识", "内容创作能力", "沟通表达能力"},
		Steps:        []string{"选择专业领域和定位", "持续输出高质量内容", "建立粉丝群体", "开发付费产品和服务"},
		Pros:         []string{"门槛低", "变现方式多样", "个人成长"},
		Cons:         []string{"内容同质化竞争", "需要持续输出"},
		Views:        1876,
		LastUpdated:  "2024-12-15",
		Featured:     true,
	},
	{
		ID:           6,
		Title:        "Amazon FBA 跨境电商",
		Category:     "跨境贸易",
		Description:  "利用亚马逊FBA服务销售产品到海外市场",
		Tools:        []string{"Amazon Seller Central", "Helium 10", "1688", "PayPal"},
		Pricing:      "产品利润率 20-50%",
		Difficulty:   model.DifficultyHard,
		Setup:        "2-3个月",
		Profit:       "月收入 5000-50000元",
		Requirements: []string{"英语能力", "市场分析", "资金投入", "供应链管理"},
		Steps:        []string{"市场调研和产品选择", "找到可靠供应商", "产品优化和上架", "广告投放和运营优化"},
		Pros:         []string{"市场空间大", "可扩展性强", "美元收入"},
		Cons:         []string{"前期投入大", "政策风险", "竞争激烈"},
		Views:        1432,
		LastUpdated:  "2024-12-14",
	},
	{
		ID:           7,
		Title:        "Shopee 东南亚电商代运营",
		Category:     "跨境贸易",
		Description:  "为国内企业提供东南亚电商平台代运营服务",
		Tools:        []string{"Shopee Seller Center", "ChatGPT", "翻译工具", "数据分析工具"},
		Pricing:      "代运营费 5000-20000元/月",
		Difficulty:   model.DifficultyMedium,
		Setup:        "1个月",
		Profit:       "月收入 8000-30000元",
		Requirements: []string{"东南亚市场了解", "电商运营经验", "多语言能力"},
		Steps:        []string{"了解东南亚各国市场特点", "建立运营团队", "开发标准化服务流程", "寻找企业客户合作"},
		Pros:         []string{"蓝海市场", "B2B服务稳定", "可批量化"},
		Cons:         []string{"文化差异", "汇率风险"},
		Views:        987,
		LastUpdated:  "2024-12-13",
	},
	{
		ID:           8,
		Title:        "在线编程课程制作与销售",
		Category:     "知识服务",
		Description:  "制作编程教学课程，在多平台销售",
		Tools:        []string{"腾讯课堂", "网易云课堂", "Udemy", "OBS", "VS Code"},
		Pricing:      "课程定价 99-999元",
		Difficulty:   model.DifficultyMedium,
		Setup:        "1-3个月",
		Profit:       "月收入 2000-25000元",
		Requirements: []string{"编程技能", "教学能力", "课程设计能力"},
		Steps:        []string{"选择热门编程语言/技术", "设计完整课程大纲", "录制高质量视频课程", "多平台上架和推广"},
		Pros:         []string{"一次制作多次销售", "技能变现", "帮助他人成长"},
		Cons:         []string{"技术更新快", "制作周期长"},
		Views:        1654,
		LastUpdated:  "2024-12-12",
		Featured:     true,
	},
	{
		ID:           9,
		Title:        "ChatGPT 应用培训咨询",
		Category:     "知识服务",
		Description:  "为企业和个人提供AI工具使用培训和咨询",
		Tools:        []string{"ChatGPT", "Claude", "Midjourney", "腾讯会议", "PPT"},
		Pricing:      "培训费 3000-10000元/场，咨询 500-1000元/小时",
		Difficulty:   model.DifficultyEasy,
		Setup:        "1-2周",
		Profit:       "月收入 5000-20000元",
		Requirements: []string{"AI工具熟练使用", "培训演讲能力", "案例积累"},
		Steps:        []string{"深度学习各种AI工具", "开发标准培训课程", "积累实际应用案例", "建立企业客户渠道"},
		Pros:         []string{"市场需求旺盛", "时薪高", "技能前沿"},
		Cons:         []string{"技术更新快", "需要持续学习"},
		Views:        2890,
		LastUpdated:  "2024-12-17",
	},
	{
		ID:           10,
		Title:        "宠物寄养和遛狗服务",
		Category:     "生活服务",
		Description:  "为上班族提供宠物日间照看和遛狗服务",
		Tools:        []string{"微信小程序", "支付宝", "宠物用品", "位置分享"},
		Pricing:      "遛狗 30-50元/次，寄养 80-150元/天",
		Difficulty:   model.DifficultyEasy,
		Setup:        "即时开始",
		Profit:       "月收入 2000-8000元",
		Requirements: []string{"喜爱动物", "责任心强", "体力充沛"},
		Steps:        []string{"在社区和网络平台宣传", "建立客户信任关系", "制定服务标准流程", "扩展服务范围"},
		Pros:         []string{"门槛低", "现金流好", "工作灵活"},
		Cons:         []string{"收入有限", "体力消耗大", "责任风险"},
		Views:        1123,
		LastUpdated:  "2024-12-11",
	},
}
